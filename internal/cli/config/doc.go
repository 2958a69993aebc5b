// Package config defines the buildmeta configuration.
//
//   - spec.go: Config struct and defaults
//   - loader.go: loading through confloader, validation
//
// Configuration covers where the sources live (root, version headers),
// how to query version control (bzr binary, parent-branch pattern), where
// the flag cache is kept, which pkg-config to run, and logging.
//
// A buildmeta.yaml in the source root is picked up automatically when no
// --config flag is given.
package config
