package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/reasonandrage/letterbox/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Target   targetInfo `json:"target"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// targetInfo describes the page letters are added to.
type targetInfo struct {
	Repository string `json:"repository"`
	Path       string `json:"path"`
	APIURL     string `json:"api_url"`
	Timezone   string `json:"timezone"`
	Token      bool   `json:"token"`
	Reachable  bool   `json:"reachable"`
}

// systemInfo holds build and platform details.
type systemInfo struct {
	Version string `json:"version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
	Go      string `json:"go"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	var (
		common     commonFlags
		target     targetFlags
		jsonOutput bool
		offline    bool
	)
	fs := newFlagSet("doctor")
	addCommonFlags(fs, &common)
	addTargetFlags(fs, &target)
	fs.BoolVar(&jsonOutput, "json", false, "print the report as JSON")
	fs.BoolVar(&offline, "offline", false, "skip the GitHub check")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v: %v\n", ErrUsage, err)
		return ExitUsage
	}

	result := runDoctor(ctx, common, target, offline, env)

	if jsonOutput {
		_ = writeJSON(env.Stdout, result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, common commonFlags, target targetFlags, offline bool, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			Version: Version,
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Go:      runtime.Version(),
		},
	}

	// Quiet logger: doctor reports through its own output
	common.quiet, common.verbose = true, false
	_, _, svc, err := setup(common, target, env)
	if err != nil {
		result.Errors = append(result.Errors, err.Error()+hintFor(err))
		result.Status = "errors"
		return result
	}

	cfg := svc.Config()
	result.Target = targetInfo{
		Repository: cfg.Owner + "/" + cfg.Repo,
		Path:       cfg.Path,
		APIURL:     cfg.APIURL,
		Timezone:   cfg.Timezone,
		Token:      cfg.Token != "",
	}

	switch {
	case cfg.Token == "":
		result.Warnings = append(result.Warnings,
			"GITHUB_TOKEN is not set; submit will fail"+hints.ForMissingToken())
	case offline:
		result.Warnings = append(result.Warnings, "GitHub check skipped (--offline)")
	default:
		if err := svc.CheckDocument(ctx); err != nil {
			result.Errors = append(result.Errors, err.Error()+hintFor(err))
		} else {
			result.Target.Reachable = true
		}
	}

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// printDoctorResult prints human-readable diagnostic output.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "letterbox doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Target:")
	if r.Target.Repository != "" {
		fmt.Fprintf(w, "  Repository: %s\n", r.Target.Repository)
		fmt.Fprintf(w, "  Path:       %s\n", r.Target.Path)
		fmt.Fprintf(w, "  API:        %s\n", r.Target.APIURL)
		fmt.Fprintf(w, "  Timezone:   %s\n", r.Target.Timezone)
		fmt.Fprintf(w, "  Token:      %s\n", yesNo(r.Target.Token))
		fmt.Fprintf(w, "  Reachable:  %s\n", yesNo(r.Target.Reachable))
	} else {
		fmt.Fprintln(w, "  (configuration could not be loaded)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System:")
	fmt.Fprintf(w, "  Version: %s\n", r.System.Version)
	fmt.Fprintf(w, "  OS/Arch: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintf(w, "  Go:      %s\n", r.System.Go)

	for _, e := range r.Errors {
		fmt.Fprintf(w, "\n[ERROR] %s\n", e)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "\n[WARN] %s\n", warn)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status: %s\n", r.Status)
}

// yesNo renders a bool for the report.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
