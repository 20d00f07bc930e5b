package pipeline

import (
	"errors"
	"strings"
	"testing"
)

const testPage = `<html><body>
<header><article>banner</article></header>
<section class="letters">
<article class="letter">first</article>
<article class="letter">second</article>
</section>
</body></html>
`

func TestSpliceEntry(t *testing.T) {
	t.Parallel()

	entry := `<article class="letter">new</article>`

	got, err := SpliceEntry(testPage, entry)
	if err != nil {
		t.Fatalf("SpliceEntry() error = %v", err)
	}

	want := `<html><body>
<header><article>banner</article></header>
<section class="letters">
<article class="letter">first</article>

<article class="letter">new</article>
<article class="letter">second</article>
</section>
</body></html>
`
	if got != want {
		t.Errorf("SpliceEntry() =\n%s\nwant\n%s", got, want)
	}

	if before, after := strings.Count(testPage, "<article"), strings.Count(got, "<article"); after != before+1 {
		t.Errorf("entry count = %d, want %d", after, before+1)
	}

	first := strings.Index(got, "first")
	added := strings.Index(got, "new</article>")
	second := strings.Index(got, "second")
	if !(first < added && added < second) {
		t.Errorf("entry order wrong: first=%d new=%d second=%d", first, added, second)
	}
}

func TestSpliceEntry_PreservesSurroundingBytes(t *testing.T) {
	t.Parallel()

	got, err := SpliceEntry(testPage, "X")
	if err != nil {
		t.Fatalf("SpliceEntry() error = %v", err)
	}

	pos, _ := FindInsertionPoint(testPage)
	if got[:pos] != testPage[:pos] {
		t.Error("prefix changed")
	}
	if got[pos+len(EntrySeparator)+1:] != testPage[pos:] {
		t.Error("suffix changed")
	}
}

func TestFindInsertionPoint_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "no letters section",
			doc:     "<html><article>a</article></html>",
			wantErr: ErrContainerNotFound,
		},
		{
			name:    "anchor match is case-sensitive",
			doc:     `<SECTION class="letters"><article>a</article>`,
			wantErr: ErrContainerNotFound,
		},
		{
			name:    "empty letters section",
			doc:     `<section class="letters"></section>`,
			wantErr: ErrNoEntryAnchor,
		},
		{
			name:    "entries only before the section",
			doc:     `<article>a</article><section class="letters"></section>`,
			wantErr: ErrNoEntryAnchor,
		},
		{
			name:    "empty document",
			doc:     "",
			wantErr: ErrContainerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FindInsertionPoint(tt.doc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindInsertionPoint() error = %v, want %v", err, tt.wantErr)
			}

			if _, err := SpliceEntry(tt.doc, "x"); !errors.Is(err, tt.wantErr) {
				t.Errorf("SpliceEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindInsertionPoint_SkipsEarlierEntries(t *testing.T) {
	t.Parallel()

	pos, err := FindInsertionPoint(testPage)
	if err != nil {
		t.Fatalf("FindInsertionPoint() error = %v", err)
	}

	wantAfter := `<article class="letter">first</article>`
	if !strings.HasSuffix(testPage[:pos], wantAfter) {
		t.Errorf("insertion point after %q, want after %q", testPage[:pos], wantAfter)
	}
}
