// Package command provides CLI command definitions for buildmeta.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/version"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Print the application version defined in the source headers",
		UsageText: "buildmeta version\n\nScans headers.primary, then headers.fallback, for #define VERSION.",
		Action:    versionAction,
	}
}

type versionResult struct {
	Version string `json:"version" yaml:"version"`
}

func versionAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}

	v, err := version.Read(s.cfg.SourceRoot, s.cfg.Headers)
	if err != nil {
		return err
	}
	return s.render(c.App.Writer, v, versionResult{Version: v})
}
