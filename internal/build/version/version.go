// Package version extracts the application version from generated C
// headers.
package version

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrVersionNotFound is returned when no header defines VERSION.
var ErrVersionNotFound = errors.New("version not found")

// Default header locations relative to the source root.
const (
	DefaultPrimaryHeader  = "src/build.h"
	DefaultFallbackHeader = "src/defs_version.h"
)

const defineVersion = "#define VERSION"

// Headers names the primary and fallback header files.
type Headers struct {
	Primary  string `koanf:"primary" json:"primary" yaml:"primary"`
	Fallback string `koanf:"fallback" json:"fallback" yaml:"fallback"`
}

// DefaultHeaders returns the standard header locations.
func DefaultHeaders() Headers {
	return Headers{
		Primary:  DefaultPrimaryHeader,
		Fallback: DefaultFallbackHeader,
	}
}

// Read returns the version defined in the primary header, or in the
// fallback header when the primary has none. Relative header paths are
// resolved against root.
func Read(root string, h Headers) (string, error) {
	for _, path := range h.Paths(root) {
		v, ok, err := ReadFile(path)
		if err != nil {
			return "", err
		}
		if ok {
			return v, nil
		}
	}
	return "", ErrVersionNotFound
}

// ReadFile scans a single header file. ok is false when the file has no
// VERSION line.
func ReadFile(path string) (version string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("read version header: %w", err)
	}
	defer f.Close()

	version, ok, err = Extract(f)
	if err != nil {
		return "", false, fmt.Errorf("read version header %s: %w", path, err)
	}
	return version, ok, nil
}

// Extract scans r for the first VERSION definition and returns its value:
// the last whitespace-separated field with surrounding quotes removed.
// Lines of any length are accepted.
func Extract(r io.Reader) (version string, ok bool, err error) {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", false, readErr
		}
		if v, found := versionValue(line); found {
			return v, true, nil
		}
		if readErr != nil {
			return "", false, nil
		}
	}
}

func versionValue(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !isVersionDefine(line) {
		return "", false
	}
	fields := strings.Fields(line)
	return strings.Trim(fields[len(fields)-1], `"`), true
}

// isVersionDefine reports whether line defines VERSION itself, not a
// longer macro such as VERSION_MAJOR.
func isVersionDefine(line string) bool {
	rest, found := strings.CutPrefix(line, defineVersion)
	if !found {
		return false
	}
	return rest == "" || unicode.IsSpace(rune(rest[0]))
}

// Paths returns the non-empty header paths resolved against root, primary
// first.
func (h Headers) Paths(root string) []string {
	var out []string
	for _, name := range []string{h.Primary, h.Fallback} {
		if name != "" {
			out = append(out, resolve(root, name))
		}
	}
	return out
}

func resolve(root, name string) string {
	if root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}
