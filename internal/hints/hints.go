// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/http"
	"strings"
)

// ForUpstreamStatus returns a hint for a failed GitHub API call by status.
// Returns "" for statuses without a known remedy.
func ForUpstreamStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return format("check GITHUB_TOKEN is valid and not expired")
	case http.StatusForbidden:
		return format("the token needs contents and pull request write access; it may also be rate limited")
	case http.StatusNotFound:
		return format("check github.owner, github.repo and github.path; private repositories answer 404 to tokens without access")
	case http.StatusConflict:
		return format("the page changed while the letter was being added; submit again")
	case http.StatusUnprocessableEntity:
		return format("the branch may already exist; submit again to get a new branch suffix")
	}
	if status >= 500 {
		return format("GitHub is having trouble; try again later")
	}
	return ""
}

// ForMissingToken returns a hint for a missing GitHub token.
func ForMissingToken() string {
	return format("set GITHUB_TOKEN in the environment or a .env file")
}

// ForStructure returns a hint for a page without the expected anchors.
func ForStructure(anchor string) string {
	return format("the page needs a " + anchor + " element holding at least one <article>")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/letterbox/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/letterbox) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/letterbox") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTimezone returns a hint for an unknown timezone name.
func ForTimezone() string {
	return format("use an IANA name such as UTC or America/New_York")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
