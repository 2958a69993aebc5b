// Package command provides CLI command definitions for buildmeta.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/infra/buildinfo"
)

// SelfVersionCommand returns the self-version command.
func SelfVersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "self-version",
		Usage:  "Print buildmeta's own build information",
		Action: selfVersion,
	}
}

func selfVersion(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	info := buildinfo.Get()
	return s.render(c.App.Writer, info.String(), info)
}
