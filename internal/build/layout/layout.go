// Package layout names build output directories.
package layout

import (
	"runtime"
	"strconv"
	"strings"
)

// DirSuffix terminates every build directory name.
const DirSuffix = "_build"

// platformPrefixLen is how many characters of the platform name are kept.
const platformPrefixLen = 3

// DirName returns the build directory name for platform and bitWidth.
// Platforms shorter than three characters are used whole; no case
// conversion is applied.
func DirName(platform, bitWidth string) string {
	prefix := platform
	if r := []rune(platform); len(r) > platformPrefixLen {
		prefix = string(r[:platformPrefixLen])
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(bitWidth) + len(DirSuffix))
	b.WriteString(prefix)
	b.WriteString(bitWidth)
	b.WriteString(DirSuffix)
	return b.String()
}

// DirNameBits is DirName with an integer bit width.
func DirNameBits(platform string, bits int) string {
	return DirName(platform, strconv.Itoa(bits))
}

// Platform is a build host description.
type Platform struct {
	Name string `json:"name" yaml:"name"`
	Bits int    `json:"bits" yaml:"bits"`
}

// DirName returns the build directory name for p.
func (p Platform) DirName() string {
	return DirNameBits(p.Name, p.Bits)
}

// HostPlatform describes the machine buildmeta runs on, using the
// platform names of the build scripts (linux, windows, osx, bsd).
func HostPlatform() Platform {
	return Platform{
		Name: PlatformName(runtime.GOOS),
		Bits: strconv.IntSize,
	}
}

// PlatformName maps a GOOS value to a build script platform name.
// Unknown values are returned unchanged.
func PlatformName(goos string) string {
	switch goos {
	case "darwin":
		return "osx"
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return "bsd"
	default:
		return goos
	}
}
