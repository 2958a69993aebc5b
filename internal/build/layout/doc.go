// Package layout names build output directories.
//
// A build directory name is the first three characters of the platform
// name, the bit width, and the suffix "_build":
//
//	DirName("windows", "64") // "win64_build"
//	DirNameBits("linux", 32) // "lin32_build"
package layout
