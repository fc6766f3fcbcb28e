package main

import (
	"log/slog"
	"os"

	"github.com/flock/flockd/internal"
	"github.com/flock/flockd/internal/cli"
)

// The entry point for the flockd device agent.
//
// Parses the command line, prints the startup banner, and configures
// logging at the requested level. Help, version and invalid arguments are
// handled by [cli.Parse], which exits the process.
func main() {
	cfg := cli.Parse(os.Args)

	if err := cli.WriteBanner(os.Stdout, cfg); err != nil {
		os.Exit(1)
	}

	cli.ConfigureLogger(os.Stderr, cfg.LogLevel())

	slog.Debug("flockd is running",
		"version", internal.VersionString(),
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
