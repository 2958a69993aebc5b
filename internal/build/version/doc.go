// Package version extracts the application version from generated C
// headers.
//
// Two headers are consulted, relative to the source root:
//
//   - src/build.h: written by the build for non-release branches
//   - src/defs_version.h: the checked-in release version
//
// The first line of the form
//
//	#define VERSION "1.2.3"
//
// in the primary header wins; the fallback is only read when the primary
// has no such line. A build without a version cannot continue, so Read
// returns ErrVersionNotFound rather than a default.
package version
