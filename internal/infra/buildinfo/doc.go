// Package buildinfo provides build information for buildmeta itself.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: VCS commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// Values not set through ldflags are filled from runtime/debug build
// info, which carries the module version and the vcs.* settings that
// go build stamps by default.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/buildmeta/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
