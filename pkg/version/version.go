// Package version carries the build metadata stamped into the roadviz
// binary at link time.
package version

import "fmt"

// Build metadata, overridden via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("roadviz %s (commit: %s, built: %s)", Version, Commit, Date)
}
