// Package command provides CLI command definitions for buildmeta.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration (YAML unless -o is json or table)",
				Action: configShow,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}

	format := s.format
	if format == output.FormatText {
		format = output.FormatYAML
	}
	return output.NewFormatter(format).Format(c.App.Writer, s.cfg)
}
