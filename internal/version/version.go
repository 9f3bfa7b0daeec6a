// Package version holds build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the full version string
func String() string {
	return fmt.Sprintf("societyctl %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
