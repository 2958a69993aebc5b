// Package command provides CLI command definitions for buildmeta.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/probe"
	"github.com/yndnr/buildmeta/internal/cli/output"
	"github.com/yndnr/buildmeta/internal/telemetry/metric"
)

// ProbeCommand returns the probe subcommand group.
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Check for pkg-config and packages; exits 1 if a check fails",
		Subcommands: []*cli.Command{
			{
				Name:   "tool",
				Usage:  "Check that pkg-config is available",
				Flags:  []cli.Flag{minVersionFlag(probe.DefaultToolVersion), metricsFileFlag()},
				Action: probeToolAction,
			},
			{
				Name:      "pkg",
				Usage:     "Check that packages are installed",
				ArgsUsage: "NAME...",
				Flags:     []cli.Flag{minVersionFlag(""), metricsFileFlag()},
				Action:    probePkgAction,
			},
		},
	}
}

func minVersionFlag(def string) cli.Flag {
	return &cli.StringFlag{
		Name:  "min",
		Usage: "Minimum required version",
		Value: def,
	}
}

func metricsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Also write results as Prometheus text metrics to this file",
	}
}

type probeResult struct {
	Package    string `json:"package" yaml:"package"`
	MinVersion string `json:"min_version,omitempty" yaml:"min_version,omitempty"`
	Found      bool   `json:"found" yaml:"found"`
}

// reporter prints progress in text mode; other formats render the
// collected results once all checks are done.
func (s *state) reporter(c *cli.Context) probe.Reporter {
	if s.format == output.FormatText {
		return probe.NewTextReporter(c.App.Writer)
	}
	return probe.Discard
}

func (s *state) prober() *probe.Prober {
	return probe.New(s.newRunner(s.cfg.SourceRoot), s.cfg.PkgConfig.Binary)
}

func probeToolAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	ctx, cancel := s.cmdContext(c)
	defer cancel()

	minVersion := c.String("min")
	found := s.prober().CheckTool(ctx, s.reporter(c), minVersion)
	return s.finishProbe(c, []probeResult{{
		Package:    s.cfg.PkgConfig.Binary,
		MinVersion: minVersion,
		Found:      found,
	}})
}

func probePkgAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return cli.Exit("probe pkg: at least one package NAME is required", 2)
	}
	ctx, cancel := s.cmdContext(c)
	defer cancel()

	p := s.prober()
	rep := s.reporter(c)
	minVersion := c.String("min")

	results := make([]probeResult, 0, c.NArg())
	for _, name := range c.Args().Slice() {
		results = append(results, probeResult{
			Package:    name,
			MinVersion: minVersion,
			Found:      p.CheckPackage(ctx, rep, name, minVersion),
		})
	}
	return s.finishProbe(c, results)
}

// finishProbe renders non-text output, writes metrics if requested and
// turns any failed check into exit status 1.
func (s *state) finishProbe(c *cli.Context, results []probeResult) error {
	if s.format != output.FormatText {
		if err := output.NewFormatter(s.format).Format(c.App.Writer, results); err != nil {
			return err
		}
	}

	if path := c.String("metrics-file"); path != "" {
		reg := metric.NewRegistry()
		for _, r := range results {
			reg.SetProbeResult(r.Package, r.Found)
		}
		if err := reg.WriteTextfile(path); err != nil {
			return err
		}
	}

	for _, r := range results {
		if !r.Found {
			s.log.Debug("probe failed", "package", r.Package, "min_version", r.MinVersion)
			return cli.Exit("", 1)
		}
	}
	return nil
}
