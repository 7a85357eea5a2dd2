package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set through -ldflags "-X github.com/z64/shark-report/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("shark-report %s (commit=%s, date=%s, go=%s)", resolvedVersion(), Commit, Date, goVersion())
}

// resolvedVersion falls back to the module version for `go install` builds.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

func goVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi.GoVersion
	}
	return "unknown"
}
