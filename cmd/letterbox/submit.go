package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// runSubmit publishes one letter and prints the pull request URL.
func runSubmit(ctx context.Context, args []string, env *Environment) error {
	f, err := parseSubmitFlags("submit", args)
	if err != nil {
		return err
	}

	_, _, svc, err := setup(f.common, f.target, env)
	if err != nil {
		return err
	}

	in, err := buildSubmission(f.letter, svc, env)
	if err != nil {
		return err
	}

	result, err := svc.Submit(ctx, in)
	if err != nil {
		return err
	}

	if f.json {
		return writeJSON(env.Stdout, result)
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "opened pull request #%d on branch %s\n", result.Number, result.Branch)
	}
	fmt.Fprintln(env.Stdout, result.URL)
	return nil
}

// runPreview prints what submit would publish, without calling GitHub.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	f, err := parseSubmitFlags("preview", args)
	if err != nil {
		return err
	}

	_, _, svc, err := setup(f.common, f.target, env)
	if err != nil {
		return err
	}

	in, err := buildSubmission(f.letter, svc, env)
	if err != nil {
		return err
	}

	p, err := svc.Preview(ctx, in)
	if err != nil {
		return err
	}

	if f.json {
		return writeJSON(env.Stdout, p)
	}
	if f.common.quiet {
		fmt.Fprintln(env.Stdout, p.EntryHTML)
		return nil
	}
	fmt.Fprintf(env.Stdout, "branch: %s\n", p.Branch)
	fmt.Fprintf(env.Stdout, "title:  %s\n\n", p.Title)
	fmt.Fprintln(env.Stdout, p.EntryHTML)
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, p.Body)
	return nil
}

// writeJSON encodes v with indentation.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
