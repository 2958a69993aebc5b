// Package main provides the entry point for buildmeta.
package main

import (
	"context"
	"os"

	"github.com/yndnr/buildmeta/internal/cli/command"
	"github.com/yndnr/buildmeta/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.WithSignals(context.Background())

	err := command.App().RunContext(ctx, os.Args)
	sig, interrupted := shutdown.Signal(ctx)
	stop()

	if interrupted {
		command.PrintError("interrupted by %v", sig)
		os.Exit(shutdown.ExitCode(sig))
	}
	if err != nil {
		command.PrintError("%v", err)
		os.Exit(1)
	}
}
