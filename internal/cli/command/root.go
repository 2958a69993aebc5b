// Package command provides CLI command definitions for buildmeta.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/cli/config"
	"github.com/yndnr/buildmeta/internal/cli/output"
	"github.com/yndnr/buildmeta/internal/infra/buildinfo"
	"github.com/yndnr/buildmeta/internal/infra/execrun"
	"github.com/yndnr/buildmeta/internal/telemetry/logger"
)

// Runner executes external programs and returns their stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RunnerFactory returns a Runner working in dir.
type RunnerFactory func(dir string) Runner

func execRunner(dir string) Runner {
	return execrun.New(dir)
}

const stateKey = "state"

// state is built once per invocation by the Before hook.
type state struct {
	cfg       *config.Config
	log       logger.Logger
	format    output.Format
	timeout   time.Duration
	newRunner RunnerFactory
}

// App creates the CLI application.
func App() *cli.App {
	return NewApp(execRunner)
}

// NewApp creates the CLI application with external programs run through
// newRunner.
func NewApp(newRunner RunnerFactory) *cli.App {
	app := &cli.App{
		Name:                 "buildmeta",
		Usage:                "Build metadata helpers: revision, branch, version, flags and package probes",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			RevisionCommand(),
			BranchCommand(),
			BuildDirCommand(),
			VersionCommand(),
			FlagCommand(),
			FlagsCommand(),
			ProbeCommand(),
			InfoCommand(),
			ConfigCommand(),
			SelfVersionCommand(),
		},
		Metadata: map[string]any{},
	}
	app.Before = func(c *cli.Context) error {
		return setup(c, newRunner)
	}
	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default: <source-root>/" + config.DefaultFileName + " if present)",
			EnvVars: []string{"BUILDMETA_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "source-root",
			Aliases: []string{"C"},
			Usage:   "Source tree root",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
			EnvVars: []string{"BUILDMETA_OUTPUT"},
			Value:   string(output.FormatText),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Abort external commands after this long (0 = no limit)",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigFile string
	SourceRoot string
	Output     string
	LogLevel   string
	LogFormat  string
	Verbose    bool
	Timeout    time.Duration
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		ConfigFile: c.String("config"),
		SourceRoot: c.String("source-root"),
		Output:     c.String("output"),
		LogLevel:   c.String("log-level"),
		LogFormat:  c.String("log-format"),
		Verbose:    c.Bool("verbose"),
		Timeout:    c.Duration("timeout"),
	}
}

// ConfigOverrides returns the flags that override configuration keys.
// Only flags given on the command line are included.
func (f *GlobalFlags) ConfigOverrides() map[string]any {
	out := make(map[string]any)
	if f.SourceRoot != "" {
		out["source_root"] = f.SourceRoot
	}
	if f.LogLevel != "" {
		out["log.level"] = f.LogLevel
	}
	if f.LogFormat != "" {
		out["log.format"] = f.LogFormat
	}
	return out
}

func setup(c *cli.Context, newRunner RunnerFactory) error {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigFile, flags.ConfigOverrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if flags.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	// run_id tells apart invocations writing to a shared log.
	log = log.With("run_id", ulid.Make().String())
	logger.SetDefault(log)

	log.Debug("configuration loaded",
		"source_root", cfg.SourceRoot,
		"config_file", flags.ConfigFile,
		"output", string(format),
	)

	c.App.Metadata[stateKey] = &state{
		cfg:       cfg,
		log:       log,
		format:    format,
		timeout:   flags.Timeout,
		newRunner: newRunner,
	}
	return nil
}

// getState retrieves the per-invocation state from context.
func getState(c *cli.Context) (*state, error) {
	if s, ok := c.App.Metadata[stateKey].(*state); ok {
		return s, nil
	}
	return nil, fmt.Errorf("command %s: not initialized", c.Command.FullName())
}

// cmdContext returns the command's context carrying the logger and the
// configured timeout.
func (s *state) cmdContext(c *cli.Context) (context.Context, context.CancelFunc) {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithCommand(ctx, c.Command.FullName())
	ctx = logger.WithLogger(ctx, s.log)
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// render writes data in the selected format. In text format the plain
// string is printed instead, so scripts get a bare value.
func (s *state) render(w io.Writer, plain string, data any) error {
	if s.format == output.FormatText {
		_, err := fmt.Fprintln(w, plain)
		return err
	}
	return output.NewFormatter(s.format).Format(w, data)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
