// Package command provides CLI command definitions for buildmeta.
package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/layout"
	"github.com/yndnr/buildmeta/internal/build/vcs"
	"github.com/yndnr/buildmeta/internal/build/version"
	"github.com/yndnr/buildmeta/internal/cli/output"
	"github.com/yndnr/buildmeta/internal/telemetry/metric"
)

// InfoCommand returns the info command.
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Print revision, branch, version and build directory together",
		Flags:  []cli.Flag{metricsFileFlag()},
		Action: infoAction,
	}
}

type infoResult struct {
	Revision string `json:"revision" yaml:"revision"`
	Branch   string `json:"branch" yaml:"branch"`
	Version  string `json:"version" yaml:"version"`
	Platform string `json:"platform" yaml:"platform"`
	Bits     int    `json:"bits" yaml:"bits"`
	BuildDir string `json:"build_dir" yaml:"build_dir"`
}

func infoAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	ctx, cancel := s.cmdContext(c)
	defer cancel()

	res := s.collectInfo(ctx)
	if err := output.NewFormatter(s.format).Format(c.App.Writer, res); err != nil {
		return err
	}

	if path := c.String("metrics-file"); path != "" {
		reg := metric.NewRegistry()
		reg.SetInfo(res.Revision, res.Branch, res.Version, res.BuildDir)
		if err := reg.WriteTextfile(path); err != nil {
			return err
		}
		s.log.Debug("metrics written", "path", path)
	}
	return nil
}

func (s *state) collectInfo(ctx context.Context) infoResult {
	src := s.source()
	host := layout.HostPlatform()
	res := infoResult{
		Revision: vcs.Revision(ctx, src),
		Branch:   vcs.BranchName(ctx, src, s.cfg.VCS.Branch.Pattern()),
		Platform: host.Name,
		Bits:     host.Bits,
		BuildDir: host.DirName(),
	}

	// A missing version is reported but does not fail the summary.
	v, err := version.Read(s.cfg.SourceRoot, s.cfg.Headers)
	if err != nil {
		level := s.log.Warn
		if errors.Is(err, version.ErrVersionNotFound) {
			level = s.log.Info
		}
		level("version unavailable", "error", err)
	}
	res.Version = v
	return res
}
