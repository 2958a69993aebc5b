// Package command provides CLI command definitions for buildmeta.
package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/layout"
)

// BuildDirCommand returns the builddir command.
func BuildDirCommand() *cli.Command {
	host := layout.HostPlatform()
	return &cli.Command{
		Name:  "builddir",
		Usage: "Print the build directory name for a platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "platform",
				Usage: "Platform name (linux, osx, windows, bsd, ...)",
				Value: host.Name,
			},
			&cli.StringFlag{
				Name:  "bits",
				Usage: "Bit width (32, 64)",
				Value: strconv.Itoa(host.Bits),
			},
		},
		Action: buildDirAction,
	}
}

type buildDirResult struct {
	Platform string `json:"platform" yaml:"platform"`
	Bits     string `json:"bits" yaml:"bits"`
	BuildDir string `json:"build_dir" yaml:"build_dir"`
}

func buildDirAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}

	res := buildDirResult{
		Platform: c.String("platform"),
		Bits:     c.String("bits"),
	}
	res.BuildDir = layout.DirName(res.Platform, res.Bits)
	return s.render(c.App.Writer, res.BuildDir, res)
}
