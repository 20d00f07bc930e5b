package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: letterbox <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Accept letters over HTTP")
	fmt.Fprintln(w, "  submit     Open a pull request adding one letter")
	fmt.Fprintln(w, "  preview    Show the letter block without calling GitHub")
	fmt.Fprintln(w, "  doctor     Check configuration and the target page")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'letterbox help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Target:")
	fmt.Fprintln(w, "      --owner <s>           Repository owner")
	fmt.Fprintln(w, "      --repo <s>            Repository name")
	fmt.Fprintln(w, "      --path <s>            Page path in the repository")
	fmt.Fprintln(w, "      --timezone <s>        IANA zone used to read dates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every submission step")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GITHUB_TOKEN, GITHUB_OWNER, GITHUB_REPO")
	fmt.Fprintln(w, "  LETTERBOX_CONFIG, LETTERBOX_ADDR, LETTERBOX_PATH, LETTERBOX_TIMEZONE,")
	fmt.Fprintln(w, "  LETTERBOX_API_URL, LETTERBOX_LOG_LEVEL")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: letterbox serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Accept letters at POST /api/submit and POST /api/preview.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default \":8788\")")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSubmitUsage prints usage for the submit and preview commands.
func printSubmitUsage(w io.Writer, cmd, summary string) {
	fmt.Fprintf(w, "Usage: letterbox %s --title <s> [flags]\n", cmd)
	fmt.Fprintln(w)
	fmt.Fprintln(w, summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Letter:")
	fmt.Fprintln(w, "  -t, --title <s>           Letter title")
	fmt.Fprintln(w, "  -d, --date <s>            Date: YYYY-MM-DD, \"auto\" (default), or \"auto:FORMAT\"")
	fmt.Fprintln(w, "      --content <s>         Content: paragraphs, - or * lists, **bold**, *italic*")
	fmt.Fprintln(w, "  -f, --file <path>         Read content from file (default: stdin)")
	fmt.Fprintln(w, "      --json                Print the result as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: letterbox doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check configuration, the token, and that the page has a letters section.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w, "      --offline             Skip the GitHub check")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "serve":
		printServeUsage(env.Stdout)
	case "submit":
		printSubmitUsage(env.Stdout, "submit", "Open a pull request that adds one letter to the page.")
	case "preview":
		printSubmitUsage(env.Stdout, "preview", "Show the letter block and pull request text without calling GitHub.")
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: letterbox version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: letterbox help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
