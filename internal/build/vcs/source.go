// Package vcs queries version-control metadata for a build.
package vcs

import (
	"context"
	"strings"
)

// Runner executes an external program and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Source answers version-control queries for a working tree.
type Source interface {
	CurrentRevision(ctx context.Context) (string, error)
	InfoLines(ctx context.Context) ([]string, error)
	Nickname(ctx context.Context) (string, error)
}

// DefaultBazaarBinary is the bzr executable looked up on PATH.
const DefaultBazaarBinary = "bzr"

// Bazaar is a Source backed by the bzr command-line client.
type Bazaar struct {
	runner Runner
	binary string
}

// NewBazaar returns a Bazaar source that runs binary through runner.
// An empty binary means DefaultBazaarBinary.
func NewBazaar(runner Runner, binary string) *Bazaar {
	if binary == "" {
		binary = DefaultBazaarBinary
	}
	return &Bazaar{runner: runner, binary: binary}
}

// CurrentRevision runs "bzr revno" and returns its first line.
func (b *Bazaar) CurrentRevision(ctx context.Context) (string, error) {
	out, err := b.runner.Run(ctx, b.binary, "revno")
	return firstLine(out), err
}

// InfoLines runs "bzr info" and returns its output split into lines.
// Both LF and CRLF line endings are accepted.
func (b *Bazaar) InfoLines(ctx context.Context) ([]string, error) {
	out, err := b.runner.Run(ctx, b.binary, "info")
	if out == "" {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, err
}

// Nickname runs "bzr nick" and returns its first line.
func (b *Bazaar) Nickname(ctx context.Context) (string, error) {
	out, err := b.runner.Run(ctx, b.binary, "nick")
	return firstLine(out), err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "\r")
}
