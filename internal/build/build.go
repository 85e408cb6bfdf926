// Package build holds build-time information.
package build

import "fmt"

// These default to development values and are overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the full version line.
func String() string {
	return fmt.Sprintf("pave version %s (commit: %s, date: %s)", Version, Commit, Date)
}
