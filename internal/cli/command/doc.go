// Package command provides CLI command definitions for buildmeta.
//
// Command groups:
//
//   - revision, branch: version-control queries (bzr)
//   - builddir: build directory name for a platform
//   - version: application version from the source headers
//   - flag, flags: cached integer build flags
//   - probe: pkg-config checks
//   - info: everything above in one record, optionally as Prometheus metrics
//   - config: effective configuration
//   - self-version: buildmeta's own build information
//
// Global flags are parsed in the App's Before hook, which loads the
// configuration and installs the logger for all commands.
package command
