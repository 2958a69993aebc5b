// Package main provides the entry point for buildmeta.
//
// buildmeta prints build metadata for a bzr-managed source tree: the
// revision, a branch descriptor, the build directory name, the version
// from the source headers, cached build flags, and pkg-config checks.
//
// Usage:
//
//	buildmeta [global options] command [command options] [arguments...]
//
// Examples:
//
//	buildmeta revision
//	buildmeta -C ~/src/mixxx -o json info
//	buildmeta builddir --platform windows --bits 32
//	buildmeta flag --default 0 msvcdebug msvcdebug=1
//	buildmeta probe pkg --min 19 portaudio-2.0
//
// Diagnostics go to stderr; stdout carries only results.
package main
