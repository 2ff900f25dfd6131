// Package version reports the build identity of the weburl binary. The
// variables are set with -ldflags "-X" at release time and otherwise filled
// from the module build info.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills Version, Commit and Date from the embedded build
// info where ldflags left them unset.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	apply(info)
}

func apply(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == unknown {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == unknown {
				Date = s.Value
			}
		}
	}
}

// String renders "weburl VERSION (commit: C, built: D)".
func String() string {
	return fmt.Sprintf("weburl %s (commit: %s, built: %s)", Version, Commit, Date)
}
