// Package flags resolves integer build flags through a cached store.
package flags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOverride is returned when an override is not an integer.
var ErrInvalidOverride = errors.New("invalid flag override")

// Overrides holds name=value arguments given on this invocation.
type Overrides map[string]string

// ParseArguments splits name=value tokens from positional arguments.
// A later assignment to the same name wins.
func ParseArguments(args []string) (Overrides, []string) {
	overrides := make(Overrides)
	var rest []string
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			rest = append(rest, arg)
			continue
		}
		overrides[name] = value
	}
	return overrides, rest
}

// Resolve returns the value for flag name: a non-negative override, then
// the cached value in env, then def. The result is stored in env before it
// is returned. A non-integer override leaves env untouched.
func Resolve(env *Env, overrides Overrides, name string, def int) (int, error) {
	value := -1
	if raw, ok := overrides[name]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w %s=%q: %w", ErrInvalidOverride, name, raw, err)
		}
		value = n
	}

	if value < 0 {
		if cached, ok := env.Get(name); ok {
			value = cached
		} else {
			value = def
		}
	}

	env.Set(name, value)
	return value, nil
}
