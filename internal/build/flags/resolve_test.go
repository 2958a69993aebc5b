package flags

import (
	"errors"
	"strconv"
	"testing"
)

func TestResolve_DefaultThenCached(t *testing.T) {
	env := NewEnv()

	v, err := Resolve(env, nil, "optimize", 5)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if v != 5 {
		t.Errorf("first Resolve() = %d, want 5", v)
	}

	// No override and a different default: the cached value wins.
	v, err = Resolve(env, nil, "optimize", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if v != 5 {
		t.Errorf("second Resolve() = %d, want cached 5", v)
	}
}

func TestResolve_OverrideReplacesCache(t *testing.T) {
	env := NewEnv()
	env.Set("optimize", 1)

	v, err := Resolve(env, Overrides{"optimize": "3"}, "optimize", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if v != 3 {
		t.Errorf("Resolve() = %d, want 3", v)
	}
	if cached, _ := env.Get("optimize"); cached != 3 {
		t.Errorf("cached value = %d, want 3", cached)
	}

	// Idempotent once cached.
	v, _ = Resolve(env, nil, "optimize", 9)
	if v != 3 {
		t.Errorf("Resolve() after override = %d, want 3", v)
	}
}

func TestResolve_NegativeOverrideIgnored(t *testing.T) {
	tests := []struct {
		name     string
		cached   *int
		override string
		def      int
		want     int
	}{
		{"negative falls back to default", nil, "-1", 7, 7},
		{"negative falls back to cache", intPtr(2), "-5", 7, 2},
		{"zero is a valid override", intPtr(2), "0", 7, 0},
		{"whitespace trimmed", nil, " 4 ", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv()
			if tt.cached != nil {
				env.Set("jobs", *tt.cached)
			}

			v, err := Resolve(env, Overrides{"jobs": tt.override}, "jobs", tt.def)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if v != tt.want {
				t.Errorf("Resolve() = %d, want %d", v, tt.want)
			}
			if cached, ok := env.Get("jobs"); !ok || cached != tt.want {
				t.Errorf("cached = %d (ok=%v), want %d", cached, ok, tt.want)
			}
		})
	}
}

func TestResolve_InvalidOverride(t *testing.T) {
	env := NewEnv()
	env.Set("shoutcast", 1)

	_, err := Resolve(env, Overrides{"shoutcast": "yes"}, "shoutcast", 0)
	if !errors.Is(err, ErrInvalidOverride) {
		t.Fatalf("Resolve() error = %v, want ErrInvalidOverride", err)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("error should wrap *strconv.NumError, got %v", err)
	}

	if cached, _ := env.Get("shoutcast"); cached != 1 {
		t.Errorf("cache modified on error: %d, want 1", cached)
	}
}

func TestResolve_OtherFlagsUntouched(t *testing.T) {
	env := NewEnv()
	overrides := Overrides{"a": "1"}

	if _, err := Resolve(env, overrides, "b", 2); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if env.Has("a") {
		t.Error("override for a should not be cached when resolving b")
	}
	if v, _ := env.Get("b"); v != 2 {
		t.Errorf("b = %d, want 2", v)
	}
}

func TestParseArguments(t *testing.T) {
	overrides, rest := ParseArguments([]string{
		"optimize=3", "qdebug", "jobs=4", "=x", "optimize=2",
	})

	if len(overrides) != 2 {
		t.Errorf("len(overrides) = %d, want 2", len(overrides))
	}
	if overrides["optimize"] != "2" {
		t.Errorf("optimize = %q, want last assignment %q", overrides["optimize"], "2")
	}
	if overrides["jobs"] != "4" {
		t.Errorf("jobs = %q, want %q", overrides["jobs"], "4")
	}
	if len(rest) != 2 || rest[0] != "qdebug" || rest[1] != "=x" {
		t.Errorf("rest = %q, want [qdebug =x]", rest)
	}
}

func intPtr(v int) *int { return &v }
