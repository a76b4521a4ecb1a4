package version

import "fmt"

var (
	// Version is the current application version.
	// It should be populated by the build system (ldflags).
	Version = "v0.3.0"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the version line printed by `computare-gen version`.
func String() string {
	return fmt.Sprintf("computare-gen %s (commit: %s, built: %s)", Version, Commit, Date)
}
