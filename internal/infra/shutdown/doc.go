// Package shutdown ties command lifetimes to process signals.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	err := app.RunContext(ctx, os.Args)
//	if sig, ok := shutdown.Signal(ctx); ok {
//		os.Exit(shutdown.ExitCode(sig))
//	}
//
// Subprocesses started with exec.CommandContext on ctx are killed when a
// signal arrives.
package shutdown
