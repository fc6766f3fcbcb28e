package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name used in the banner, version output and usage text.
	Name = "flockd"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// Main branch name used in version strings
	mainBranch = "main"
)

var (
	version   = "0.1.0" // Version number (e.g., "1.2.3")
	stage     = ""      // Development stage or git branch (e.g., "staging", "main")
	gitCommit = ""      // Git commit hash (e.g., "a1b2c3d4")
)

// Returns the current version.
//
// If the version is not set, returns "(undefined)". If the version includes a
// "v" or "V" prefix (e.g., "v1.0.0"), it is stripped.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}

	v = strings.ToLower(v)
	v = strings.TrimPrefix(v, "v")

	return v
}

// Returns the development stage (e.g., "alpha").
//
// If it is not set, returns "(undefined)".
func Stage() string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return defaultUndefined
	}
	return strings.ToLower(s)
}

// Returns the git commit hash, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns true if this is a local (non-pipeline) build.
//
// Pipeline builds set the git commit and stage via linker flags; the version
// carries a compiled-in default and does not count.
func IsLocal() bool {
	return strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns a detailed version string.
//
// Formatted as "<version>+<stage> <git-commit> [<arch>]". The stage is
// omitted for the main branch. Local builds render as "<version> (local)".
func VersionString() string {
	if IsLocal() {
		return Version() + " (local)"
	}

	s := Stage()
	if s == mainBranch {
		s = ""
	} else {
		s = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), s, GitCommit(), runtime.GOARCH)
}
