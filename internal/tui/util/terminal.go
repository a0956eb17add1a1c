// Package util provides utility functions for the TUI
package util

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive returns true if the current terminal is interactive
// (not a pipe, not in CI environment)
func IsInteractive() bool {
	// Check if stdin is a terminal
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false
	}

	// Check if stdout is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}

	// Forced off, e.g. for screenshots of the help text
	if os.Getenv("FOLIO_NO_TUI") != "" {
		return false
	}

	// Check for CI environment variables
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"TRAVIS",
		"CIRCLECI",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",          // Azure Pipelines
		"CODEBUILD_BUILD_ID", // AWS CodeBuild
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return true
}
