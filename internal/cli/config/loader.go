// Package config defines the buildmeta configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/buildmeta/internal/infra/confloader"
)

// Load builds the configuration from defaults, the config file at path,
// BUILDMETA_* environment variables and flags, in increasing priority.
// An empty path falls back to DiscoverFile in the source root.
func Load(path string, flags map[string]any) (*Config, error) {
	cfg := Default()

	if path == "" {
		root := cfg.SourceRoot
		if v, ok := flags["source_root"].(string); ok && v != "" {
			root = v
		} else if v := os.Getenv(confloader.DefaultEnvPrefix + "SOURCE_ROOT"); v != "" {
			root = v
		}
		path = DiscoverFile(root)
	}

	opts := []confloader.Option{confloader.WithFlags(flags)}
	if path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DiscoverFile returns root/buildmeta.yaml if it exists, otherwise "".
func DiscoverFile(root string) string {
	path := filepath.Join(root, DefaultFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if cfg.SourceRoot == "" {
		return errors.New("source_root is required")
	}
	if cfg.Headers.Primary == "" && cfg.Headers.Fallback == "" {
		return errors.New("at least one of headers.primary, headers.fallback is required")
	}
	if cfg.VCS.Branch.Project == "" {
		return errors.New("vcs.branch.project is required")
	}
	if cfg.PkgConfig.Binary == "" {
		return errors.New("pkgconfig.binary is required")
	}
	if cfg.Flags.CacheFile == "" {
		return errors.New("flags.cache_file is required")
	}
	return nil
}

// VCSDir returns the directory version-control commands run in.
func (c *Config) VCSDir() string {
	if c.VCS.Dir != "" {
		return c.resolve(c.VCS.Dir)
	}
	return c.SourceRoot
}

// FlagCachePath returns the flag cache file location.
func (c *Config) FlagCachePath() string {
	return c.resolve(c.Flags.CacheFile)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.SourceRoot, path)
}
