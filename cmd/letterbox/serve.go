package main

import (
	"context"

	"github.com/reasonandrage/letterbox/internal/server"
)

// runServe starts the HTTP API and blocks until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	s, logger, svc, err := setup(f.common, f.target, env)
	if err != nil {
		return err
	}
	setIf(&s.addr, f.addr)

	cfg := svc.Config()
	if cfg.Token == "" {
		// Preview and health checks still work; submissions fail until a token is set
		logger.Warn("GITHUB_TOKEN is not set, submissions will be rejected")
	}

	logger.Info("serving letters",
		"addr", s.addr,
		"repository", cfg.Owner+"/"+cfg.Repo,
		"path", cfg.Path,
		"version", Version,
	)
	return server.New(svc, logger).Run(ctx, s.addr)
}
