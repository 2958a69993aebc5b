// Package logger provides structured logging for buildmeta.
//
// It wraps log/slog with a small Logger interface:
//
//   - logger.go: Logger construction, levels, the default logger
//   - context.go: carrying a Logger through context.Context
//   - redact.go: masking credentials in attributes
//
// Log output goes to stderr so that command output on stdout stays
// machine-readable. The default level is warn; subprocess failures that
// buildmeta deliberately tolerates are logged at debug.
package logger
