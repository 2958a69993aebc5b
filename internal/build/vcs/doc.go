// Package vcs queries version-control metadata for a build.
//
// A Source answers three questions about the working tree:
//
//   - CurrentRevision: the revision number ("bzr revno")
//   - InfoLines: the branch info listing ("bzr info")
//   - Nickname: the branch nickname ("bzr nick")
//
// Revision and BranchName turn those answers into the strings the build
// embeds. Both degrade to an empty or fallback string when the tool is
// missing or fails; callers always get some string back.
package vcs
