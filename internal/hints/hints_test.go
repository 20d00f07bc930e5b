package hints

import (
	"net/http"
	"strings"
	"testing"
)

func TestForUpstreamStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		contains string
	}{
		{http.StatusUnauthorized, "GITHUB_TOKEN"},
		{http.StatusForbidden, "write access"},
		{http.StatusNotFound, "github.repo"},
		{http.StatusConflict, "submit again"},
		{http.StatusUnprocessableEntity, "branch"},
		{http.StatusBadGateway, "try again later"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			hint := ForUpstreamStatus(tt.status)
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", hint)
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint %q should contain %q", hint, tt.contains)
			}
		})
	}
}

func TestForUpstreamStatus_Unknown(t *testing.T) {
	t.Parallel()

	for _, status := range []int{0, http.StatusOK, http.StatusTeapot} {
		if hint := ForUpstreamStatus(status); hint != "" {
			t.Errorf("ForUpstreamStatus(%d) = %q, want empty", status, hint)
		}
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"prod.yaml", "/home/u/.config/letterbox/prod.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
		if !strings.Contains(hint, "create /home/u/.config/letterbox/prod.yaml") {
			t.Errorf("expected user path suggestion, got %q", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"prod.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("unexpected create suggestion: %q", hint)
		}
	})
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hint     string
		contains string
	}{
		{"missing token", ForMissingToken(), "GITHUB_TOKEN"},
		{"structure", ForStructure(`<section class="letters">`), `<section class="letters">`},
		{"timezone", ForTimezone(), "America/New_York"},
	}

	for _, tt := range tests {
		if !strings.HasPrefix(tt.hint, "\n  hint: ") || !strings.Contains(tt.hint, tt.contains) {
			t.Errorf("%s: hint = %q", tt.name, tt.hint)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
