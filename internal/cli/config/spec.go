// Package config defines the buildmeta configuration.
package config

import (
	"github.com/yndnr/buildmeta/internal/build/probe"
	"github.com/yndnr/buildmeta/internal/build/vcs"
	"github.com/yndnr/buildmeta/internal/build/version"
)

// Config is the root configuration.
type Config struct {
	SourceRoot string          `koanf:"source_root" json:"source_root" yaml:"source_root"`
	Headers    version.Headers `koanf:"headers" json:"headers" yaml:"headers"`
	VCS        VCSConfig       `koanf:"vcs" json:"vcs" yaml:"vcs"`
	Flags      FlagsConfig     `koanf:"flags" json:"flags" yaml:"flags"`
	PkgConfig  PkgConfig       `koanf:"pkgconfig" json:"pkgconfig" yaml:"pkgconfig"`
	Log        LogConfig       `koanf:"log" json:"log" yaml:"log"`
}

// VCSConfig configures version-control queries.
type VCSConfig struct {
	// Binary is the bzr executable.
	Binary string `koanf:"binary" json:"binary" yaml:"binary"`
	// Dir is the working tree; empty means SourceRoot.
	Dir    string       `koanf:"dir" json:"dir,omitempty" yaml:"dir,omitempty"`
	Branch BranchConfig `koanf:"branch" json:"branch" yaml:"branch"`
}

// BranchConfig describes the parent-branch URL used to name branches.
type BranchConfig struct {
	BaseURL      string `koanf:"base_url" json:"base_url" yaml:"base_url"`
	Project      string `koanf:"project" json:"project" yaml:"project"`
	DefaultOwner string `koanf:"default_owner" json:"default_owner" yaml:"default_owner"`
}

// Pattern converts the configuration to a vcs.BranchPattern.
func (b BranchConfig) Pattern() vcs.BranchPattern {
	return vcs.BranchPattern{
		BaseURL:      b.BaseURL,
		Project:      b.Project,
		DefaultOwner: b.DefaultOwner,
	}
}

// FlagsConfig configures the flag cache.
type FlagsConfig struct {
	// CacheFile is relative to SourceRoot unless absolute.
	CacheFile string `koanf:"cache_file" json:"cache_file" yaml:"cache_file"`
}

// PkgConfig configures package probes.
type PkgConfig struct {
	Binary string `koanf:"binary" json:"binary" yaml:"binary"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// Default configuration values.
const (
	DefaultFileName      = "buildmeta.yaml"
	DefaultSourceRoot    = "."
	DefaultFlagCacheFile = ".buildmeta/flags.yaml"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)

// Default returns the default configuration.
func Default() *Config {
	pattern := vcs.DefaultBranchPattern()
	return &Config{
		SourceRoot: DefaultSourceRoot,
		Headers:    version.DefaultHeaders(),
		VCS: VCSConfig{
			Binary: vcs.DefaultBazaarBinary,
			Branch: BranchConfig{
				BaseURL:      pattern.BaseURL,
				Project:      pattern.Project,
				DefaultOwner: pattern.DefaultOwner,
			},
		},
		Flags: FlagsConfig{
			CacheFile: DefaultFlagCacheFile,
		},
		PkgConfig: PkgConfig{
			Binary: probe.DefaultBinary,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
