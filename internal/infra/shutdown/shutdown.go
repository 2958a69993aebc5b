// Package shutdown ties command lifetimes to process signals.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// DefaultSignals are the signals WithSignals listens for when none are given.
var DefaultSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// SignalError is the cancellation cause of a context cancelled by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received signal " + e.Signal.String()
}

// WithSignals returns a copy of parent that is cancelled when one of sigs
// arrives. The returned stop function releases the signal handler and
// cancels the context; call it once the work is done.
func WithSignals(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = DefaultSignals
	}

	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case sig := <-ch:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(ch)
		cancel(context.Canceled)
	}
	return ctx, stop
}

// Signal reports the signal that cancelled ctx, if any.
func Signal(ctx context.Context) (os.Signal, bool) {
	var se *SignalError
	if errors.As(context.Cause(ctx), &se) {
		return se.Signal, true
	}
	return nil, false
}

// ExitCode returns the conventional shell exit status for a process
// terminated by sig: 128 plus the signal number.
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
