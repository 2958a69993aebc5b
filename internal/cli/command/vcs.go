// Package command provides CLI command definitions for buildmeta.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/buildmeta/internal/build/vcs"
)

// RevisionCommand returns the revision command.
func RevisionCommand() *cli.Command {
	return &cli.Command{
		Name:   "revision",
		Usage:  "Print the current bzr revision number",
		Action: revisionAction,
	}
}

// BranchCommand returns the branch command.
func BranchCommand() *cli.Command {
	return &cli.Command{
		Name:   "branch",
		Usage:  "Print the branch descriptor (owner~branch, or the nickname)",
		Action: branchAction,
	}
}

type revisionResult struct {
	Revision string `json:"revision" yaml:"revision"`
}

type branchResult struct {
	Branch string `json:"branch" yaml:"branch"`
}

func (s *state) source() vcs.Source {
	return vcs.NewBazaar(s.newRunner(s.cfg.VCSDir()), s.cfg.VCS.Binary)
}

func revisionAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	ctx, cancel := s.cmdContext(c)
	defer cancel()

	rev := vcs.Revision(ctx, s.source())
	return s.render(c.App.Writer, rev, revisionResult{Revision: rev})
}

func branchAction(c *cli.Context) error {
	s, err := getState(c)
	if err != nil {
		return err
	}
	ctx, cancel := s.cmdContext(c)
	defer cancel()

	name := vcs.BranchName(ctx, s.source(), s.cfg.VCS.Branch.Pattern())
	return s.render(c.App.Writer, name, branchResult{Branch: name})
}
