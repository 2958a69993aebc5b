// Package buildinfo provides build-time version information.
package buildinfo

import (
	"runtime"
	"runtime/debug"
)

const (
	devVersion = "dev"
	unknown    = "unknown"
)

// Build-time variables (set via ldflags).
var (
	// Version is the semantic version.
	Version = devVersion

	// Commit is the VCS commit hash.
	Commit = unknown

	// BuildTime is the build timestamp.
	BuildTime = unknown

	// GoVersion is the Go version used to build.
	GoVersion = unknown
)

// Info contains build information.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Modified  bool   `json:"modified" yaml:"modified"`
}

// Get returns the build information.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = merge(info, bi)
	}
	if info.GoVersion == unknown {
		info.GoVersion = runtime.Version()
	}
	return info
}

// merge fills fields still at their defaults from bi.
func merge(info Info, bi *debug.BuildInfo) Info {
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.GoVersion == unknown && bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a formatted version string.
func String() string {
	return Get().String()
}

// String returns a formatted version string.
func (i Info) String() string {
	s := i.Version + " (" + i.Commit
	if i.Modified {
		s += ", modified"
	}
	return s + ") built at " + i.BuildTime + " with " + i.GoVersion
}
