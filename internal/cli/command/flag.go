// Package command provides CLI command definitions for buildmeta.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/flags"
	"github.com/yndnr/buildmeta/internal/cli/output"
)

const flagDescription = `An override NAME=value with a non-negative value wins and replaces the
cached value. A negative override is ignored. Without an override the
cached value is used, then --default. The result is written back to the cache.`

// FlagCommand returns the flag command.
func FlagCommand() *cli.Command {
	return &cli.Command{
		Name:        "flag",
		Usage:       "Resolve a build flag from overrides, the flag cache, or a default",
		ArgsUsage:   "NAME [name=value ...]",
		Description: flagDescription,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "default",
				Usage: "Value used when neither an override nor a cached value exists",
			},
			flagCacheFlag(),
		},
		Action: flagAction,
	}
}

// FlagsCommand returns the flags command.
func FlagsCommand() *cli.Command {
	return &cli.Command{
		Name:   "flags",
		Usage:  "List cached build flags",
		Flags:  []cli.Flag{flagCacheFlag()},
		Action: flagsAction,
	}
}

func flagCacheFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "cache",
		Usage: "Flag cache file (default: flags.cache_file from config)",
	}
}

type flagResult struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func (s *state) flagCachePath(c *cli.Context) string {
	if path := c.String("cache"); path != "" {
		return path
	}
	return s.cfg.FlagCachePath()
}

func flagAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}

	overrides, names := flags.ParseArguments(c.Args().Slice())
	if len(names) != 1 {
		return fmt.Errorf("flag: expected one NAME, got %d", len(names))
	}
	name := names[0]

	path := s.flagCachePath(c)
	env, err := flags.Load(path)
	if err != nil {
		return err
	}

	value, err := flags.Resolve(env, overrides, name, c.Int("default"))
	if err != nil {
		return err
	}
	if err := env.Save(path); err != nil {
		return err
	}

	s.log.Debug("flag resolved", "name", name, "value", value, "cache", path)
	return s.render(c.App.Writer, strconv.Itoa(value), flagResult{Name: name, Value: value})
}

func flagsAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}

	env, err := flags.Load(s.flagCachePath(c))
	if err != nil {
		return err
	}

	var b strings.Builder
	for i, name := range env.Keys() {
		if i > 0 {
			b.WriteByte('\n')
		}
		v, _ := env.Get(name)
		fmt.Fprintf(&b, "%s=%d", name, v)
	}
	if b.Len() == 0 && s.format == output.FormatText {
		return nil
	}
	return s.render(c.App.Writer, b.String(), env.Snapshot())
}
