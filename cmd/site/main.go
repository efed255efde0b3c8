// Command site serves or exports the Soul Creations site.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

// envFile is read when present; variables already set take precedence.
const envFile = ".env"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "serve":
		if err := runServe(envFile); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	case "export":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "Usage: site export <dir>")
			return 1
		}
		if err := runExport(envFile, args[1], stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	case "version":
		fmt.Fprintf(stdout, "site %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `site - Soul Creations, a bilingual one-page site with offering pages

Usage:
  site <command> [arguments]

Commands:
  serve         Serve the site (configured by SITE_* variables and .env)
  export <dir>  Write the site as static files into a new directory
  version       Print the version
  help          Show this help message

Environment:
  SITE_URL, SITE_ADDR, SITE_STATIC_DIR, SITE_LOG_LEVEL, SITE_LOG_FORMAT,
  SITE_RATE_LIMIT, SITE_RATE_BURST, SITE_CACHE_TTL, SITE_SHUTDOWN_TIMEOUT`)
}
