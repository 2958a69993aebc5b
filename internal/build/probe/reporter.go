// Package probe checks for pkg-config and for packages it knows about.
package probe

import (
	"fmt"
	"io"
)

// Reporter receives progress output for a check.
type Reporter interface {
	// Message is called once before the check runs.
	Message(msg string)
	// Result is called once after the check with its outcome.
	Result(ok bool)
}

// TextReporter writes "Checking for x... yes" style lines.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Message writes msg without a trailing newline.
func (r *TextReporter) Message(msg string) {
	fmt.Fprint(r.w, msg)
}

// Result completes the current line with "yes" or "no".
func (r *TextReporter) Result(ok bool) {
	if ok {
		fmt.Fprintln(r.w, "yes")
		return
	}
	fmt.Fprintln(r.w, "no")
}

// Discard is a Reporter that drops all output.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Message(string) {}
func (discard) Result(bool)    {}
