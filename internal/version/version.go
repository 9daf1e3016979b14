// Package version carries the build metadata stamped in at link time.
package version

import "fmt"

// Set via -ldflags "-X github.com/vk/apphost/internal/version.Branch=..." etc.
var (
	Branch = "local"
	Commit = "unknown"
	Date   = "unknown"
)

// Banner renders the one-line build identification emitted at startup.
func Banner() string {
	return fmt.Sprintf("Build: %s@%s on %s", Branch, Commit, Date)
}
