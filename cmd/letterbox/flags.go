package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// targetFlags select the repository and page to update.
type targetFlags struct {
	owner    string
	repo     string
	path     string
	timezone string
}

// letterFlags describe one letter.
type letterFlags struct {
	title   string
	date    string
	content string
	file    string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	target targetFlags
	addr   string
}

// submitFlags holds all flags for the submit and preview commands.
type submitFlags struct {
	common commonFlags
	target targetFlags
	letter letterFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every submission step")
}

// addTargetFlags adds repository target flags to a FlagSet.
func addTargetFlags(fs *flag.FlagSet, f *targetFlags) {
	fs.StringVar(&f.owner, "owner", "", "repository owner")
	fs.StringVar(&f.repo, "repo", "", "repository name")
	fs.StringVar(&f.path, "path", "", "page path in the repository")
	fs.StringVar(&f.timezone, "timezone", "", "IANA zone used to read dates")
}

// addLetterFlags adds letter flags to a FlagSet.
func addLetterFlags(fs *flag.FlagSet, f *letterFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "letter title")
	fs.StringVarP(&f.date, "date", "d", "", "letter date, YYYY-MM-DD or \"auto\" for today")
	fs.StringVar(&f.content, "content", "", "letter content (markdown subset)")
	fs.StringVarP(&f.file, "file", "f", "", "read content from file (default: stdin)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string) (*serveFlags, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve")
	addCommonFlags(fs, &f.common)
	addTargetFlags(fs, &f.target)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default \":8788\")")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

// parseSubmitFlags parses submit and preview command flags.
func parseSubmitFlags(name string, args []string) (*submitFlags, error) {
	f := &submitFlags{}
	fs := newFlagSet(name)
	addCommonFlags(fs, &f.common)
	addTargetFlags(fs, &f.target)
	addLetterFlags(fs, &f.letter)
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if f.letter.content != "" && f.letter.file != "" {
		return nil, fmt.Errorf("%w: --content and --file are mutually exclusive", ErrUsage)
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, nil
}
