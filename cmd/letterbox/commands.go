package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reasonandrage/letterbox"
	"github.com/reasonandrage/letterbox/internal/dateutil"
	"github.com/reasonandrage/letterbox/internal/fileutil"
)

// ErrReadContent indicates the letter content could not be read.
var ErrReadContent = errors.New("reading letter content")

// setup resolves settings and builds the logger and service for a command.
func setup(common commonFlags, target targetFlags, env *Environment) (*settings, *slog.Logger, *letterbox.Service, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	s, err := resolveSettings(common, target, loadEnvConfig(env.Getenv))
	if err != nil {
		return nil, nil, nil, err
	}

	logger := newLogger(env.Stderr, s.logLevel, s.logFormat)

	svc, err := letterbox.New(s.service,
		letterbox.WithHTTPClient(env.HTTPClient),
		letterbox.WithClock(env.Now),
		letterbox.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, logger, svc, nil
}

// buildSubmission assembles a Submission from flags, reading content
// from --content, --file, or stdin in that order.
func buildSubmission(f letterFlags, svc *letterbox.Service, env *Environment) (letterbox.Submission, error) {
	content, err := readContent(f, env.Stdin)
	if err != nil {
		return letterbox.Submission{}, err
	}

	date, err := resolveLetterDate(f.date, svc.Config().Timezone, env)
	if err != nil {
		return letterbox.Submission{}, err
	}

	return letterbox.Submission{Title: f.title, Date: date, Content: content}, nil
}

// readContent returns the letter body from the first configured source.
func readContent(f letterFlags, stdin io.Reader) (string, error) {
	if f.content != "" {
		return f.content, nil
	}
	if f.file != "" {
		content, err := fileutil.ReadFile(f.file)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadContent, err)
		}
		return content, nil
	}
	if stdin == nil {
		return "", nil
	}
	content, err := fileutil.ReadLimited(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: stdin: %w", ErrReadContent, err)
	}
	return strings.TrimRight(content, "\n"), nil
}

// resolveLetterDate expands "auto" (and the empty value) to today in the
// configured zone. Other values pass through for service validation.
func resolveLetterDate(value, timezone string, env *Environment) (string, error) {
	if value == "" {
		value = "auto"
	}
	loc, err := dateutil.LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	return dateutil.ResolveDate(value, env.Now().In(loc))
}
