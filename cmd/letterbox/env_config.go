package main

import (
	"fmt"
	"io"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides deployment-friendly overrides without requiring YAML files.
type envConfig struct {
	// GitHub target and credential
	Token string // GITHUB_TOKEN
	Owner string // GITHUB_OWNER
	Repo  string // GITHUB_REPO

	// Letterbox
	ConfigPath string // LETTERBOX_CONFIG: config file name or path
	Addr       string // LETTERBOX_ADDR: serve listen address
	Path       string // LETTERBOX_PATH: page path in the repository
	Timezone   string // LETTERBOX_TIMEZONE: IANA zone for dates
	APIURL     string // LETTERBOX_API_URL: GitHub API root
	LogLevel   string // LETTERBOX_LOG_LEVEL: debug, info, warn, error
}

// envPrefix marks the variables checked for typos.
const envPrefix = "LETTERBOX_"

// knownEnvVars lists valid LETTERBOX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LETTERBOX_CONFIG":    true,
	"LETTERBOX_ADDR":      true,
	"LETTERBOX_PATH":      true,
	"LETTERBOX_TIMEZONE":  true,
	"LETTERBOX_API_URL":   true,
	"LETTERBOX_LOG_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		Token:      getenv("GITHUB_TOKEN"),
		Owner:      getenv("GITHUB_OWNER"),
		Repo:       getenv("GITHUB_REPO"),
		ConfigPath: getenv("LETTERBOX_CONFIG"),
		Addr:       getenv("LETTERBOX_ADDR"),
		Path:       getenv("LETTERBOX_PATH"),
		Timezone:   getenv("LETTERBOX_TIMEZONE"),
		APIURL:     getenv("LETTERBOX_API_URL"),
		LogLevel:   getenv("LETTERBOX_LOG_LEVEL"),
	}
}

// warnUnknownEnvVars writes warnings for unrecognized LETTERBOX_* variables.
// Helps catch typos like LETTERBOX_TIMEZOEN.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays non-empty environment values on s.
// Order of application gives: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by applyTargetFlags).
func applyEnvConfig(env *envConfig, s *settings) {
	setIf(&s.service.Token, env.Token)
	setIf(&s.service.Owner, env.Owner)
	setIf(&s.service.Repo, env.Repo)
	setIf(&s.service.Path, env.Path)
	setIf(&s.service.Timezone, env.Timezone)
	setIf(&s.service.APIURL, env.APIURL)
	setIf(&s.addr, env.Addr)
	setIf(&s.logLevel, env.LogLevel)
}

// setIf assigns v to dst when v is not empty.
func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
