package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Program name, used for the log group, the cache root and the CLI.
const Name = "hyrun"

const (

	// Reported for any metadata variable the build did not set.
	unset = "(undefined)"

	// Reported in place of a version string for builds outside the pipeline.
	localBuild = "(local)"

	// Stage that is omitted from the version string.
	releaseStage = "main"
)

// Set via -ldflags "-X github.com/cruciblehq/hyrun/internal.<name>=<value>".
var (
	version   = "" // Release version, with or without a "v" prefix.
	stage     = "" // Branch or release channel the binary was built from.
	gitCommit = "" // Commit the binary was built from.

	rawQuiet   = "false" // Default for --quiet.
	rawDebug   = "false" // Default for --debug.
	rawVerbose = "false" // Default for --verbose.
)

// Returns the release version without its "v" prefix, or "(undefined)".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return unset
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the lower-cased build stage, or "(undefined)".
func Stage() string {
	s := strings.ToLower(strings.TrimSpace(stage))
	if s == "" {
		return unset
	}
	return s
}

// Returns the git commit the binary was built from, or "(undefined)".
func GitCommit() string {
	if c := strings.TrimSpace(gitCommit); c != "" {
		return c
	}
	return unset
}

// Whether any of the pipeline metadata variables is missing.
func IsLocal() bool {
	for _, v := range []string{version, stage, gitCommit} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Returns "<version>[+<stage>] <commit> [<os>/<arch>]", or "(local)" for
// builds made outside the release pipeline.
func VersionString() string {
	if IsLocal() {
		return localBuild
	}

	suffix := ""
	if s := Stage(); s != releaseStage {
		suffix = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s/%s]", Version(), suffix, GitCommit(), runtime.GOOS, runtime.GOARCH)
}
