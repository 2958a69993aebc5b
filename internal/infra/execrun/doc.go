// Package execrun runs external programs for buildmeta.
//
// Every metadata lookup in buildmeta shells out to a tool that is already
// installed on the build host:
//
//   - bzr: revision number, branch info, branch nickname
//   - pkg-config: tool and package presence checks
//
// Runner captures stdout for the caller and keeps stderr for error
// messages. Calls block until the process exits or ctx is cancelled.
package execrun
