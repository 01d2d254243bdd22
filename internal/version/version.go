// Package version provides build-time version information.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// String returns the full version string for logging.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
