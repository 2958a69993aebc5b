package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/buildmeta/internal/build/flags"
	"github.com/yndnr/buildmeta/internal/build/layout"
)

const parentLine = "    parent branch: http://bazaar.launchpad.net/~jdoe/mixxx/new_feature/"

func bzrInfo(parent string) string {
	return "Checkout (format: 2a)\nLocation:\n  checkout root: .\n\nRelated branches:\n" + parent + "\n"
}

func TestRevisionCommand(t *testing.T) {
	root := t.TempDir()
	fake := newFakeExec().on("bzr revno", "4242\n")

	r := runApp(t, fake, root, "revision")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "4242\n" {
		t.Errorf("stdout = %q, want %q", r.stdout, "4242\n")
	}
	if len(fake.dirs) != 1 || fake.dirs[0] != root {
		t.Errorf("runner dirs = %v, want [%s]", fake.dirs, root)
	}
}

func TestRevisionCommand_JSON(t *testing.T) {
	fake := newFakeExec().on("bzr revno", "4242\n")

	r := runApp(t, fake, t.TempDir(), "-o", "json", "revision")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	var got revisionResult
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, r.stdout)
	}
	if got.Revision != "4242" {
		t.Errorf("revision = %q", got.Revision)
	}
}

func TestRevisionCommand_NotABranch(t *testing.T) {
	fake := newFakeExec().failing("bzr revno")

	r := runApp(t, fake, t.TempDir(), "revision")
	if r.err != nil {
		t.Fatalf("a failed lookup should not fail the command: %v", r.err)
	}
	if r.stdout != "\n" {
		t.Errorf("stdout = %q, want empty line", r.stdout)
	}
}

func TestBranchCommand(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeExec
		want string
	}{
		{
			name: "other owner",
			fake: newFakeExec().on("bzr info", bzrInfo(parentLine)),
			want: "jdoe~new-feature",
		},
		{
			name: "default owner",
			fake: newFakeExec().on("bzr info", bzrInfo("    parent branch: http://bazaar.launchpad.net/~mixxxdevelopers/mixxx/release-1.9.x/")),
			want: "release-1.9.x",
		},
		{
			name: "no parent falls back to nick",
			fake: newFakeExec().on("bzr info", bzrInfo("")).on("bzr nick", "local-work\n"),
			want: "local-work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runApp(t, tt.fake, t.TempDir(), "branch")
			if r.err != nil {
				t.Fatalf("err = %v", r.err)
			}
			if got := strings.TrimSuffix(r.stdout, "\n"); got != tt.want {
				t.Errorf("branch = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBranchCommand_ConfiguredPattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "buildmeta.yaml"), `
vcs:
  branch:
    base_url: https://code.example.org/
    project: mixxx-fork
    default_owner: team
`)
	fake := newFakeExec().on("bzr info", bzrInfo("  parent branch: https://code.example.org/~team/mixxx-fork/stable_2/"))

	r := runApp(t, fake, root, "branch")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "stable-2\n" {
		t.Errorf("stdout = %q, want stable-2", r.stdout)
	}
}

func TestBuildDirCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--platform", "linux", "--bits", "64"}, "lin64_build"},
		{[]string{"--platform", "windows", "--bits", "32"}, "win32_build"},
		{[]string{"--platform", "osx", "--bits", "64"}, "osx64_build"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			args := append([]string{"builddir"}, tt.args...)
			r := runApp(t, newFakeExec(), t.TempDir(), args...)
			if r.err != nil {
				t.Fatalf("err = %v", r.err)
			}
			if r.stdout != tt.want+"\n" {
				t.Errorf("stdout = %q, want %q", r.stdout, tt.want)
			}
		})
	}
}

func TestBuildDirCommand_HostDefaults(t *testing.T) {
	r := runApp(t, newFakeExec(), t.TempDir(), "builddir")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	want := layout.DirNameBits(layout.PlatformName(runtime.GOOS), strconv.IntSize)
	if r.stdout != want+"\n" {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestVersionCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "build.h"), "#define BUILD_BRANCH \"trunk\"\n")
	writeFile(t, filepath.Join(root, "src", "defs_version.h"), "#define VERSION \"1.9.0\"\n")

	r := runApp(t, newFakeExec(), root, "version")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "1.9.0\n" {
		t.Errorf("stdout = %q, want 1.9.0", r.stdout)
	}
}

func TestVersionCommand_NotFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "build.h"), "#define BUILD_REV \"1\"\n")
	writeFile(t, filepath.Join(root, "src", "defs_version.h"), "#define VERSION_MAJOR 1\n")

	r := runApp(t, newFakeExec(), root, "version")
	if r.err == nil || r.err.Error() != "version not found" {
		t.Fatalf("err = %v, want version not found", r.err)
	}
	if r.exitCode() != 1 {
		t.Errorf("exit code = %d, want 1", r.exitCode())
	}
}

func TestFlagCommand(t *testing.T) {
	root := t.TempDir()
	cache := filepath.Join(root, ".buildmeta", "flags.yaml")
	fake := newFakeExec()

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"flag", "--default", "0", "msvcdebug"}, "0"},
		{[]string{"flag", "msvcdebug", "msvcdebug=1"}, "1"},
		{[]string{"flag", "--default", "0", "msvcdebug"}, "1"},
		{[]string{"flag", "msvcdebug", "msvcdebug=-1"}, "1"},
		{[]string{"flag", "msvcdebug", "msvcdebug=0"}, "0"},
	}

	for i, step := range steps {
		r := runApp(t, fake, root, step.args...)
		if r.err != nil {
			t.Fatalf("step %d: err = %v", i, r.err)
		}
		if got := strings.TrimSpace(r.stdout); got != step.want {
			t.Errorf("step %d (%v): value = %q, want %q", i, step.args, got, step.want)
		}
	}

	env, err := flags.Load(cache)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := env.Get("msvcdebug"); v != 0 {
		t.Errorf("cached msvcdebug = %d, want 0", v)
	}
}

func TestFlagCommand_InvalidOverride(t *testing.T) {
	root := t.TempDir()
	cache := filepath.Join(root, "flags.yaml")

	r := runApp(t, newFakeExec(), root, "flag", "--cache", cache, "shoutcast", "shoutcast=yes")
	if r.err == nil || !strings.Contains(r.err.Error(), "invalid flag override") {
		t.Fatalf("err = %v, want invalid flag override", r.err)
	}
	if _, err := os.Stat(cache); !os.IsNotExist(err) {
		t.Errorf("cache should not be written on error, stat err = %v", err)
	}
}

func TestFlagCommand_NameRequired(t *testing.T) {
	r := runApp(t, newFakeExec(), t.TempDir(), "flag", "a=1")
	if r.err == nil {
		t.Fatal("expected error without NAME")
	}
}

func TestFlagsCommand(t *testing.T) {
	root := t.TempDir()
	fake := newFakeExec()

	for _, args := range [][]string{
		{"flag", "--default", "1", "shoutcast"},
		{"flag", "--default", "0", "hss1394"},
	} {
		if r := runApp(t, fake, root, args...); r.err != nil {
			t.Fatalf("%v: %v", args, r.err)
		}
	}

	r := runApp(t, fake, root, "flags")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "hss1394=0\nshoutcast=1\n" {
		t.Errorf("stdout = %q", r.stdout)
	}

	r = runApp(t, fake, root, "-o", "yaml", "flags")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	var got map[string]int
	if err := yaml.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not YAML: %v", err)
	}
	if got["shoutcast"] != 1 || got["hss1394"] != 0 || len(got) != 2 {
		t.Errorf("flags = %v", got)
	}
}

func TestFlagsCommand_Empty(t *testing.T) {
	r := runApp(t, newFakeExec(), t.TempDir(), "flags")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "" {
		t.Errorf("stdout = %q, want empty", r.stdout)
	}
}

func TestProbeToolCommand(t *testing.T) {
	fake := newFakeExec().on("pkg-config --atleast-pkgconfig-version=0.15.0", "")

	r := runApp(t, fake, t.TempDir(), "probe", "tool", "--min", "0.15.0")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	want := "Checking for pkg-config (at least version 0.15.0)... yes\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestProbePkgCommand(t *testing.T) {
	fake := newFakeExec().
		on("pkg-config --exists sndfile", "").
		failing("pkg-config --atleast-version=19 portaudio-2.0")

	r := runApp(t, fake, t.TempDir(), "probe", "pkg", "sndfile")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if r.stdout != "Checking for sndfile... \tyes\n" {
		t.Errorf("stdout = %q", r.stdout)
	}

	r = runApp(t, fake, t.TempDir(), "probe", "pkg", "--min", "19", "portaudio-2.0")
	if r.exitCode() != 1 {
		t.Fatalf("exit code = %d, want 1 (err = %v)", r.exitCode(), r.err)
	}
	if r.stdout != "Checking for portaudio-2.0 (19 or higher)... \tno\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestProbePkgCommand_JSONAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "probe.prom")
	fake := newFakeExec().
		on("pkg-config --exists ogg", "").
		failing("pkg-config --exists vorbisfile")

	r := runApp(t, fake, dir, "-o", "json", "probe", "pkg", "--metrics-file", metrics, "ogg", "vorbisfile")
	if r.exitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", r.exitCode())
	}

	var got []probeResult
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, r.stdout)
	}
	if len(got) != 2 || !got[0].Found || got[1].Found {
		t.Errorf("results = %+v", got)
	}

	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`buildmeta_probe_result{package="ogg"} 1`,
		`buildmeta_probe_result{package="vorbisfile"} 0`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestProbePkgCommand_NoArgs(t *testing.T) {
	r := runApp(t, newFakeExec(), t.TempDir(), "probe", "pkg")
	if r.exitCode() != 2 {
		t.Errorf("exit code = %d, want 2", r.exitCode())
	}
}

func TestInfoCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "build.h"), "#define VERSION \"2.0.0-beta\"\n")
	metrics := filepath.Join(root, "info.prom")
	fake := newFakeExec().
		on("bzr revno", "4242\n").
		on("bzr info", bzrInfo(parentLine))

	r := runApp(t, fake, root, "-o", "yaml", "info", "--metrics-file", metrics)
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}

	var got infoResult
	if err := yaml.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not YAML: %v\n%s", err, r.stdout)
	}
	host := layout.HostPlatform()
	want := infoResult{
		Revision: "4242",
		Branch:   "jdoe~new-feature",
		Version:  "2.0.0-beta",
		Platform: host.Name,
		Bits:     host.Bits,
		BuildDir: host.DirName(),
	}
	if got != want {
		t.Errorf("info = %+v, want %+v", got, want)
	}

	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `version="2.0.0-beta"`) {
		t.Errorf("metrics missing version label:\n%s", data)
	}
}

func TestInfoCommand_MissingVersion(t *testing.T) {
	fake := newFakeExec().
		on("bzr revno", "1\n").
		on("bzr info", bzrInfo("")).
		on("bzr nick", "trunk\n")

	r := runApp(t, fake, t.TempDir(), "info")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	if !strings.Contains(r.stdout, "revision: 1\n") || !strings.Contains(r.stdout, "version: \n") {
		t.Errorf("stdout = %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "version unavailable") {
		t.Errorf("stderr = %q, want a warning", r.stderr)
	}
}

func TestConfigShow(t *testing.T) {
	root := t.TempDir()
	r := runApp(t, newFakeExec(), root, "config", "show")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	for _, want := range []string{
		"source_root: " + root,
		"primary: src/build.h",
		"default_owner: mixxxdevelopers",
		"binary: pkg-config",
	} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestSelfVersion(t *testing.T) {
	r := runApp(t, newFakeExec(), t.TempDir(), "-o", "json", "self-version")
	if r.err != nil {
		t.Fatalf("err = %v", r.err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(r.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	for _, key := range []string{"version", "commit", "go_version"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing %q in %v", key, got)
		}
	}
}
