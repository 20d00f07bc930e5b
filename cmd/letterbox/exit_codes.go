package main

import (
	"errors"
	"os"
	"strings"

	"github.com/reasonandrage/letterbox"
	"github.com/reasonandrage/letterbox/internal/config"
	"github.com/reasonandrage/letterbox/internal/dateutil"
	"github.com/reasonandrage/letterbox/internal/fileutil"
	"github.com/reasonandrage/letterbox/internal/github"
	"github.com/reasonandrage/letterbox/internal/hints"
	"github.com/reasonandrage/letterbox/internal/pipeline"
)

// Exit codes for the letterbox CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Letter submitted or command completed
	ExitGeneral  = 1 // General/unexpected error, including page structure errors
	ExitUsage    = 2 // Invalid flags, config, or submission
	ExitIO       = 3 // Content file not found, permission denied, too large
	ExitUpstream = 4 // GitHub API errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Upstream errors (exit 4)
	if errors.Is(err, letterbox.ErrUpstream) {
		return ExitUpstream
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrContentTooLarge) ||
		errors.Is(err, ErrReadContent) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, letterbox.ErrValidation) ||
		errors.Is(err, letterbox.ErrConfiguration) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, letterbox.ErrMissingToken):
		return hints.ForMissingToken()
	case errors.Is(err, dateutil.ErrInvalidTimezone):
		return hints.ForTimezone()
	case errors.Is(err, letterbox.ErrStructure):
		return hints.ForStructure(pipeline.ContainerAnchor)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err.Error()))
	}
	if status := github.StatusCode(err); status != 0 {
		return hints.ForUpstreamStatus(status)
	}
	return ""
}

// triedPaths extracts the searched paths from a config-not-found message.
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
