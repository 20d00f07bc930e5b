package letterbox

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// MaxSlugLength bounds the title-derived part of a branch name.
	MaxSlugLength = 50

	// fallbackSlug is used when a title has no ASCII letters or digits.
	fallbackSlug = "letter"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title, collapses every run of characters outside
// [a-z0-9] to a single "-", trims leading and trailing "-" and truncates to
// MaxSlugLength.
func Slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// BranchName derives a branch name from title and a 6-digit suffix taken
// from the last digits of now in milliseconds. Collisions are not checked.
func BranchName(title string, now time.Time) string {
	slug := Slugify(title)
	if slug == "" {
		slug = fallbackSlug
	}
	suffix := ((now.UnixMilli() % 1_000_000) + 1_000_000) % 1_000_000
	return fmt.Sprintf("%s-%06d", slug, suffix)
}
