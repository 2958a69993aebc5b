// Package execrun runs external programs for buildmeta.
package execrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yndnr/buildmeta/internal/telemetry/logger"
)

// ErrCommandFailed is wrapped by every error returned from Run when the
// program could not be started or exited non-zero.
var ErrCommandFailed = errors.New("execrun: command failed")

// Runner executes external programs. The zero value runs in the current
// directory with the inherited environment.
type Runner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the inherited environment when non-empty.
	Env []string
}

// New returns a Runner targeting dir.
func New(dir string) *Runner {
	return &Runner{Dir: dir}
}

// Run executes name with args and returns stdout. Stderr is captured
// separately and included in the error on failure.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := r.Command(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	line := commandLine(name, args)
	log := logger.FromContext(ctx).With("cmd", line, "dir", r.Dir)
	start := time.Now()

	if err := cmd.Run(); err != nil {
		e := &Error{
			Command: line,
			Dir:     r.Dir,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
		log.Debug("command failed", "exit_code", e.ExitCode(), "duration", time.Since(start), "error", err)
		return stdout.String(), e
	}
	log.Debug("command finished", "duration", time.Since(start))
	return stdout.String(), nil
}

// Command returns an *exec.Cmd configured with the runner's directory and
// environment, without starting it.
func (r *Runner) Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}
	return cmd
}

// Error describes a failed command.
type Error struct {
	Command string
	Dir     string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Command)
	if e.Dir != "" {
		b.WriteString(" in ")
		b.WriteString(e.Dir)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Stderr != "" {
		fmt.Fprintf(&b, " (stderr: %s)", e.Stderr)
	}
	return b.String()
}

// Unwrap returns both the sentinel and the underlying exec error so that
// errors.Is and errors.As work against either.
func (e *Error) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}

// ExitCode returns the process exit code, or -1 if the process did not
// exit normally (not found, killed, cancelled).
func (e *Error) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
