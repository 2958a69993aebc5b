// Package vcs queries version-control metadata for a build.
package vcs

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yndnr/buildmeta/internal/telemetry/logger"
)

// Default branch pattern values for the Launchpad-hosted mixxx project.
const (
	DefaultBaseURL = "http://bazaar.launchpad.net"
	DefaultProject = "mixxx"
	DefaultOwner   = "mixxxdevelopers"
)

const (
	branchOwnerGroup   = "owner"
	branchNameGroup    = "branch"
	parentBranchPrefix = `^\s*parent branch: `
)

// BranchPattern describes the parent-branch URL shape
// <BaseURL>/<owner>/<Project>/<branch>/ found in the info listing.
type BranchPattern struct {
	BaseURL      string
	Project      string
	DefaultOwner string
}

// DefaultBranchPattern returns the pattern for the upstream project.
func DefaultBranchPattern() BranchPattern {
	return BranchPattern{
		BaseURL:      DefaultBaseURL,
		Project:      DefaultProject,
		DefaultOwner: DefaultOwner,
	}
}

// Compile builds a matcher for parent branch lines.
func (p BranchPattern) Compile() (*BranchMatcher, error) {
	expr := fmt.Sprintf(`%s%s/(?P<%s>.*?)/%s/(?P<%s>.*?)/$`,
		parentBranchPrefix,
		regexp.QuoteMeta(strings.TrimRight(p.BaseURL, "/")),
		branchOwnerGroup,
		regexp.QuoteMeta(p.Project),
		branchNameGroup,
	)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile branch pattern: %w", err)
	}
	return &BranchMatcher{
		re:           re,
		owner:        re.SubexpIndex(branchOwnerGroup),
		branch:       re.SubexpIndex(branchNameGroup),
		defaultOwner: p.DefaultOwner,
	}, nil
}

// BranchMatcher recognizes parent branch lines of a compiled BranchPattern.
type BranchMatcher struct {
	re           *regexp.Regexp
	owner        int
	branch       int
	defaultOwner string
}

// Match extracts the raw owner and branch from a single info line.
func (m *BranchMatcher) Match(line string) (owner, branch string, ok bool) {
	sub := m.re.FindStringSubmatch(line)
	if sub == nil {
		return "", "", false
	}
	return sub[m.owner], sub[m.branch], true
}

// Find returns the descriptor for the first matching line.
func (m *BranchMatcher) Find(lines []string) (string, bool) {
	for _, line := range lines {
		if owner, branch, ok := m.Match(line); ok {
			return Describe(owner, branch, m.defaultOwner), true
		}
	}
	return "", false
}

// Describe builds the branch descriptor. Every '~' is removed from owner
// and every '_' in branch becomes '-'. The owner is omitted when it equals
// defaultOwner; otherwise the result is "owner~branch".
func Describe(owner, branch, defaultOwner string) string {
	owner = strings.ReplaceAll(owner, "~", "")
	branch = strings.ReplaceAll(branch, "_", "-")

	if owner == defaultOwner {
		return branch
	}
	return owner + "~" + branch
}

// Revision returns the trimmed current revision. Failures are logged at
// debug level and yield whatever the tool printed, usually "".
func Revision(ctx context.Context, src Source) string {
	rev, err := src.CurrentRevision(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug("revision lookup failed", "error", err)
	}
	return strings.TrimSpace(rev)
}

// BranchName returns the branch descriptor for the first info line that
// matches pattern. Without a matching line it falls back to the trimmed
// branch nickname, which may be empty.
func BranchName(ctx context.Context, src Source, pattern BranchPattern) string {
	log := logger.FromContext(ctx)

	m, err := pattern.Compile()
	if err != nil {
		log.Warn("invalid branch pattern", "error", err)
	} else {
		lines, err := src.InfoLines(ctx)
		if err != nil {
			log.Debug("branch info lookup failed", "error", err)
		}
		if name, ok := m.Find(lines); ok {
			log.Debug("parent branch matched", "branch", name)
			return name
		}
	}

	nick, err := src.Nickname(ctx)
	if err != nil {
		log.Debug("branch nickname lookup failed", "error", err)
	}
	return strings.TrimSpace(nick)
}
