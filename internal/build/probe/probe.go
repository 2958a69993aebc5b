// Package probe checks for pkg-config and for packages it knows about.
package probe

import (
	"context"
	"fmt"

	"github.com/yndnr/buildmeta/internal/telemetry/logger"
)

// DefaultBinary is the pkg-config executable looked up on PATH.
const DefaultBinary = "pkg-config"

// DefaultToolVersion is the minimum pkg-config version when none is given.
const DefaultToolVersion = "0.0.0"

// Runner executes an external program. Only the error is inspected.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Prober runs pkg-config checks.
type Prober struct {
	runner Runner
	binary string
}

// New returns a Prober using binary, or DefaultBinary when empty.
func New(runner Runner, binary string) *Prober {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Prober{runner: runner, binary: binary}
}

// CheckTool reports whether pkg-config itself is at least minVersion.
// An empty minVersion checks only that pkg-config runs.
func (p *Prober) CheckTool(ctx context.Context, rep Reporter, minVersion string) bool {
	if minVersion == "" {
		minVersion = DefaultToolVersion
	}
	rep.Message(fmt.Sprintf("Checking for pkg-config (at least version %s)... ", minVersion))
	ok := p.try(ctx, "--atleast-pkgconfig-version="+minVersion)
	rep.Result(ok)
	return ok
}

// CheckPackage reports whether package name is installed, and at least
// minVersion when minVersion is non-empty.
func (p *Prober) CheckPackage(ctx context.Context, rep Reporter, name, minVersion string) bool {
	var ok bool
	if minVersion == "" {
		rep.Message(fmt.Sprintf("Checking for %s... \t", name))
		ok = p.try(ctx, "--exists", name)
	} else {
		rep.Message(fmt.Sprintf("Checking for %s (%s or higher)... \t", name, minVersion))
		ok = p.try(ctx, "--atleast-version="+minVersion, name)
	}
	rep.Result(ok)
	return ok
}

func (p *Prober) try(ctx context.Context, args ...string) bool {
	if _, err := p.runner.Run(ctx, p.binary, args...); err != nil {
		logger.FromContext(ctx).Debug("pkg-config check failed",
			"args", args,
			"error", err,
		)
		return false
	}
	return true
}
