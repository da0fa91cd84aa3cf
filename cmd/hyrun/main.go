package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/cruciblehq/hyrun/internal"
	"github.com/cruciblehq/hyrun/internal/cli"
)

// The entry point for hyrun.
//
// Installs a logger seeded from build-time linker flags and executes the
// root command. The process exits with the server's exit code after a run,
// or 1 if the launcher itself failed.
func main() {
	cli.SetDefaultLogger(os.Stderr)

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("hyrun is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	err := cli.Execute()

	var status *cli.ExitStatus
	if errors.As(err, &status) {
		os.Exit(status.Code)
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
