// Package cmd contains build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/mcucheck/cmd.Version=v1.2.0"
package cmd

import "fmt"

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// ShortVersion returns the version with an abbreviated commit, as shown by
// --version.
func ShortVersion() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
