// Package output provides output formatting for the buildmeta CLI.
//
//   - formatter.go: Formatter interface and factory
//   - text.go: plain output for shell scripts
//   - table.go: aligned key/value and row tables
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// The text format prints scalars bare so that
// REV=$(buildmeta revision) works without post-processing.
package output
