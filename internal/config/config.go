package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reasonandrage/letterbox/internal/fileutil"
	"github.com/reasonandrage/letterbox/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName is the directory searched under the user config directory.
const AppName = "letterbox"

// Field length limits.
const (
	MaxTokenLength    = 255  // GitHub tokens are well under this
	MaxOwnerLength    = 39   // GitHub login limit
	MaxRepoLength     = 100  // GitHub repository name limit
	MaxPathLength     = 1024 // Repository file path
	MaxURLLength      = 2048 // Browser limit
	MaxPrefixLength   = 50   // Branch prefix
	MaxTimezoneLength = 64   // IANA zone names
	MaxAddrLength     = 255  // host:port
)

// Config holds the file configuration. Empty values mean "use the default".
type Config struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Letters LettersConfig `yaml:"letters"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GitHubConfig locates the page to update.
type GitHubConfig struct {
	Token                 string `yaml:"token"` // prefer GITHUB_TOKEN
	Owner                 string `yaml:"owner"`
	Repo                  string `yaml:"repo"`
	Path                  string `yaml:"path"`   // page path inside the repository
	APIURL                string `yaml:"apiURL"` // Enterprise or test servers
	BranchPrefix          string `yaml:"branchPrefix"`
	CleanupOrphanedBranch bool   `yaml:"cleanupOrphanedBranch"`
}

// LettersConfig controls how entries are rendered.
type LettersConfig struct {
	Timezone     string `yaml:"timezone"`     // IANA name, default UTC
	TemplatesDir string `yaml:"templatesDir"` // Empty = embedded templates
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"` // default ":8788"
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"github.token", c.GitHub.Token, MaxTokenLength},
		{"github.owner", c.GitHub.Owner, MaxOwnerLength},
		{"github.repo", c.GitHub.Repo, MaxRepoLength},
		{"github.path", c.GitHub.Path, MaxPathLength},
		{"github.apiURL", c.GitHub.APIURL, MaxURLLength},
		{"github.branchPrefix", c.GitHub.BranchPrefix, MaxPrefixLength},
		{"letters.timezone", c.Letters.Timezone, MaxTimezoneLength},
		{"letters.templatesDir", c.Letters.TemplatesDir, MaxPathLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.GitHub.APIURL != "" && !fileutil.IsURL(c.GitHub.APIURL) {
		return fmt.Errorf("%w: github.apiURL %q must start with http:// or https://", ErrInvalidValue, c.GitHub.APIURL)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field falls back to
// the service defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/letterbox/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// os.UserConfigDir honors XDG_CONFIG_HOME
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
