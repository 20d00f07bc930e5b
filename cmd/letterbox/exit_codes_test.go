package main

// Notes:
// - exitCodeFor: we test the sentinel errors of every package the CLI can
//   surface, plus wrapped errors to verify errors.Is() chains.
// - hintFor: we test each routed hint and the empty default.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/reasonandrage/letterbox"
	"github.com/reasonandrage/letterbox/internal/config"
	"github.com/reasonandrage/letterbox/internal/dateutil"
	"github.com/reasonandrage/letterbox/internal/fileutil"
	"github.com/reasonandrage/letterbox/internal/github"
	"github.com/reasonandrage/letterbox/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	apiErr := &github.APIError{StatusCode: http.StatusConflict, Method: "PUT", Path: "/x"}

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Upstream errors (exit 4)
		{"upstream", letterbox.ErrUpstream, ExitUpstream},
		{"upstream wrapping api error", fmt.Errorf("%w: %w", letterbox.ErrUpstream, apiErr), ExitUpstream},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"content too large", fileutil.ErrContentTooLarge, ExitIO},
		{"read content", ErrReadContent, ExitIO},
		{"wrapped file not exist", fmt.Errorf("%w: %w", ErrReadContent, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"validation", letterbox.ErrValidation, ExitUsage},
		{"configuration", letterbox.ErrConfiguration, ExitUsage},
		{"missing token", fmt.Errorf("%w: %w", letterbox.ErrConfiguration, letterbox.ErrMissingToken), ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"date format", dateutil.ErrInvalidDateFormat, ExitUsage},

		// General errors (exit 1)
		{"structure", fmt.Errorf("%w: %w", letterbox.ErrStructure, pipeline.ErrContainerNotFound), ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitUpstream} {
		if code >= 126 {
			t.Errorf("custom exit code %d collides with shell-reserved codes", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint routing
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unknown", errors.New("boom"), ""},
		{"missing token", fmt.Errorf("%w: %w", letterbox.ErrConfiguration, letterbox.ErrMissingToken), "GITHUB_TOKEN"},
		{"timezone", fmt.Errorf("%w: %w", letterbox.ErrConfiguration, dateutil.ErrInvalidTimezone), "IANA"},
		{"structure", letterbox.ErrStructure, `<section class="letters">`},
		{"config not found", fmt.Errorf("%w: tried a.yaml, /home/u/.config/letterbox/a.yaml", config.ErrConfigNotFound), "or create /home/u/.config/letterbox/a.yaml"},
		{"unauthorized", fmt.Errorf("%w: %w", letterbox.ErrUpstream, &github.APIError{StatusCode: http.StatusUnauthorized}), "GITHUB_TOKEN is valid"},
		{"teapot", &github.APIError{StatusCode: http.StatusTeapot}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.want)
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	got := triedPaths("config file not found: tried a.yaml, a.yml")
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "a.yml" {
		t.Errorf("triedPaths() = %v", got)
	}
	if got := triedPaths("config file not found: /x.yaml"); got != nil {
		t.Errorf("triedPaths() = %v, want nil", got)
	}
}
