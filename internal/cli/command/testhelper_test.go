package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"
)

// fakeExec answers commands from a table keyed by "name arg1 arg2".
// Unknown commands fail.
type fakeExec struct {
	mu      sync.Mutex
	outputs map[string]string
	fail    map[string]bool
	calls   []string
	dirs    []string
}

func newFakeExec() *fakeExec {
	return &fakeExec{
		outputs: make(map[string]string),
		fail:    make(map[string]bool),
	}
}

func (f *fakeExec) on(cmdline, stdout string) *fakeExec {
	f.outputs[cmdline] = stdout
	return f
}

func (f *fakeExec) failing(cmdline string) *fakeExec {
	f.fail[cmdline] = true
	return f
}

func (f *fakeExec) factory(dir string) Runner {
	f.mu.Lock()
	f.dirs = append(f.dirs, dir)
	f.mu.Unlock()
	return f
}

func (f *fakeExec) Run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if f.fail[key] {
		return "", errors.New("exit status 1")
	}
	out, ok := f.outputs[key]
	if !ok {
		return "", errors.New("unexpected command: " + key)
	}
	return out, nil
}

type result struct {
	stdout string
	stderr string
	err    error
}

// exitCode returns the cli exit code carried by err, 0 for nil and 1 for
// plain errors.
func (r result) exitCode() int {
	if r.err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(r.err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// runApp runs buildmeta with args against a fresh source root.
func runApp(t *testing.T, fake *fakeExec, root string, args ...string) result {
	t.Helper()

	app := NewApp(fake.factory)
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	argv := append([]string{"buildmeta", "--source-root", root}, args...)
	err := app.Run(argv)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
