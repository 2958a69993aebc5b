// Package flags resolves integer build flags through a cached store.
package flags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Env is the flag cache for a build run.
type Env struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewEnv returns an empty Env.
func NewEnv() *Env {
	return &Env{values: make(map[string]int)}
}

// Get returns the cached value for name.
func (e *Env) Get(name string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.values[name]
	return v, ok
}

// Has reports whether name is cached.
func (e *Env) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set caches value under name.
func (e *Env) Set(name string, value int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[name] = value
}

// Keys returns the cached flag names in sorted order.
func (e *Env) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the cached values.
func (e *Env) Snapshot() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]int, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Load reads an Env from a YAML file. A missing file yields an empty Env.
func Load(path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewEnv(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read flag cache: %w", err)
	}

	env := NewEnv()
	if err := yaml.Unmarshal(data, &env.values); err != nil {
		return nil, fmt.Errorf("parse flag cache %s: %w", path, err)
	}
	if env.values == nil {
		env.values = make(map[string]int)
	}
	return env, nil
}

// Save writes the Env to path as YAML, creating parent directories.
// The file is replaced atomically.
func (e *Env) Save(path string) error {
	data, err := yaml.Marshal(e.Snapshot())
	if err != nil {
		return fmt.Errorf("encode flag cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create flag cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".flags-*.yaml")
	if err != nil {
		return fmt.Errorf("write flag cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write flag cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write flag cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write flag cache: %w", err)
	}
	return nil
}
