package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/reasonandrage/letterbox"
	"github.com/reasonandrage/letterbox/internal/config"
)

// defaultAddr is the serve listen address.
const defaultAddr = ":8788"

// settings is the merged configuration of one command run.
type settings struct {
	service   letterbox.Config
	addr      string
	logLevel  string
	logFormat string
}

// resolveSettings merges defaults, the config file, the environment and
// flags, in increasing precedence.
func resolveSettings(common commonFlags, target targetFlags, env *envConfig) (*settings, error) {
	s := &settings{
		service: letterbox.DefaultConfig(),
		addr:    defaultAddr,
	}

	configName := common.config
	if configName == "" {
		configName = env.ConfigPath
	}
	if configName != "" {
		fileCfg, err := config.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
		applyFileConfig(fileCfg, s)
	}

	applyEnvConfig(env, s)
	applyTargetFlags(target, s)

	switch {
	case common.verbose:
		s.logLevel = "debug"
	case common.quiet:
		s.logLevel = "error"
	}

	return s, nil
}

// applyFileConfig copies non-empty file values onto s.
func applyFileConfig(cfg *config.Config, s *settings) {
	setIf(&s.service.Token, cfg.GitHub.Token)
	setIf(&s.service.Owner, cfg.GitHub.Owner)
	setIf(&s.service.Repo, cfg.GitHub.Repo)
	setIf(&s.service.Path, cfg.GitHub.Path)
	setIf(&s.service.APIURL, cfg.GitHub.APIURL)
	setIf(&s.service.BranchPrefix, cfg.GitHub.BranchPrefix)
	s.service.CleanupOrphanedBranch = cfg.GitHub.CleanupOrphanedBranch
	setIf(&s.service.Timezone, cfg.Letters.Timezone)
	setIf(&s.service.TemplatesDir, cfg.Letters.TemplatesDir)
	setIf(&s.addr, cfg.Server.Addr)
	setIf(&s.logLevel, cfg.Log.Level)
	setIf(&s.logFormat, cfg.Log.Format)
}

// applyTargetFlags copies non-empty flag values onto s.
func applyTargetFlags(f targetFlags, s *settings) {
	setIf(&s.service.Owner, f.owner)
	setIf(&s.service.Repo, f.repo)
	setIf(&s.service.Path, f.path)
	setIf(&s.service.Timezone, f.timezone)
}

// newLogger builds the process logger from the resolved level and format.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a level name to slog.Level, defaulting to info.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
