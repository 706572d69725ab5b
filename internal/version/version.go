package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// BuildInfo contains build-time information.
type BuildInfo struct {
	Version   string
	BuildDate string
	Commit    string
	GoVersion string
	OS        string
	Arch      string
}

// Global build info variables that will be set at build time via -ldflags.
var (
	version   = "dev"
	buildDate = "unknown"
	commit    = "unknown"
)

// GetBuildInfo returns the current build information.
// It first checks ldflags-injected values, then falls back to
// debug.ReadBuildInfo() for version information when installed via `go install`.
func GetBuildInfo() *BuildInfo {
	info := &BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		Commit:    commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if info.Version == "dev" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
				info.Version = strings.TrimPrefix(buildInfo.Main.Version, "v")
			}

			for _, setting := range buildInfo.Settings {
				switch setting.Key {
				case "vcs.revision":
					if info.Commit == "unknown" && len(setting.Value) >= 7 {
						info.Commit = setting.Value[:7]
					}
				case "vcs.time":
					if info.BuildDate == "unknown" {
						info.BuildDate = setting.Value
					}
				}
			}
		}
	}

	return info
}

// GetVersionString returns a formatted version string.
func GetVersionString() string {
	info := GetBuildInfo()
	return fmt.Sprintf("v%s", info.Version)
}

// GetFullVersionString returns a detailed version string.
func GetFullVersionString() string {
	info := GetBuildInfo()
	return fmt.Sprintf("v%s (%s)", info.Version, info.Commit)
}

// IsDevBuild returns true if this is a development build.
func IsDevBuild() bool {
	return version == "dev"
}
