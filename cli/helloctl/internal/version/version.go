package version

import "fmt"

// Stamped via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("helloctl %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
