// Package version exposes build and version information for the yam CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release version, set via ldflags. It defaults to "dev"
// for locally built binaries.
var Version = "dev"

// String returns a single-line version description combining the release
// version, the VCS revision the binary was built from, and the build
// platform.
func String() string {
	return fmt.Sprintf("%s (%s, %s, %s/%s)",
		Version, Revision(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Revision returns the VCS revision recorded in the build info, suffixed
// with "-dirty" when the working tree had local modifications.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if dirty {
		rev += "-dirty"
	}

	return rev
}
