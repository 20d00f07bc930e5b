package pipeline

import (
	"errors"
	"strings"
)

// Document anchors. The letters section holds one <article> per letter.
const (
	ContainerAnchor = `<section class="letters">`
	EntryCloseTag   = `</article>`

	// EntrySeparator precedes the spliced entry.
	EntrySeparator = "\n\n"
)

var (
	// ErrContainerNotFound indicates the page has no letters section.
	ErrContainerNotFound = errors.New("container not found")

	// ErrNoEntryAnchor indicates the letters section has no closed entry to insert after.
	ErrNoEntryAnchor = errors.New("no existing entry to anchor insertion")
)

// FindInsertionPoint returns the offset just past the first </article> that
// follows the letters section opening. Matching is exact and case-sensitive.
func FindInsertionPoint(doc string) (int, error) {
	start := strings.Index(doc, ContainerAnchor)
	if start == -1 {
		return 0, ErrContainerNotFound
	}

	rel := strings.Index(doc[start:], EntryCloseTag)
	if rel == -1 {
		return 0, ErrNoEntryAnchor
	}

	return start + rel + len(EntryCloseTag), nil
}

// SpliceEntry inserts entry, preceded by EntrySeparator, immediately after
// the first existing entry. The rest of doc is left byte-for-byte intact.
func SpliceEntry(doc, entry string) (string, error) {
	pos, err := FindInsertionPoint(doc)
	if err != nil {
		return "", err
	}
	return InsertEntry(doc, pos, entry), nil
}

// InsertEntry inserts EntrySeparator and entry at byte offset pos, which
// must come from FindInsertionPoint on the same doc.
func InsertEntry(doc string, pos int, entry string) string {
	var b strings.Builder
	b.Grow(len(doc) + len(EntrySeparator) + len(entry))
	b.WriteString(doc[:pos])
	b.WriteString(EntrySeparator)
	b.WriteString(entry)
	b.WriteString(doc[pos:])
	return b.String()
}
