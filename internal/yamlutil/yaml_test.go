package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reasonandrage/letterbox/internal/yamlutil"
)

type testConfig struct {
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Cleanup bool   `yaml:"cleanup"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("owner: acme\nrepo: site\ncleanup: true"),
			dest: &testConfig{},
		},
		{
			name: "unknown keys ignored",
			data: []byte("owner: acme\nextra: 1"),
			dest: &testConfig{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("owner: acme"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			cfg := tt.dest.(*testConfig)
			if cfg.Owner != "acme" {
				t.Errorf("Owner = %q, want %q", cfg.Owner, "acme")
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown field", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("owner: acme\nreop: site"), &cfg)
		if err == nil {
			t.Fatal("expected error for unknown field, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error %q should be prefixed with yamlutil:", err)
		}
	})

	t.Run("accepts known fields", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("owner: acme\nrepo: site"), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Repo != "site" {
			t.Errorf("Repo = %q, want %q", cfg.Repo, "site")
		}
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		t.Parallel()

		data := []byte("owner: " + strings.Repeat("a", yamlutil.MaxInputSize))
		var cfg testConfig
		err := yamlutil.UnmarshalStrict(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Fatalf("error = %v, want ErrInputTooLarge", err)
		}
	})
}
