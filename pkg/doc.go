// Package nextversion computes the next semantic version for a repository
// from its latest release tag and the commits made since that tag.
//
// The decision core is pure: [Next] maps an [Inputs] record (previous version,
// commit titles, changed paths, ignore patterns, force-patch policy) to either
// a rendered version string or the empty string meaning "no release needed".
// Commit titles are scanned for bump tokens ([major], [minor], [patch], [fix],
// [bump], [no-bump]); the highest-precedence token across the batch wins.
// When no token is present, a change set that only touches ignored paths never
// triggers a release, and a change set that touches real code falls back to
// the force-patch policy.
//
// The git collaborator ([Repo]) supplies those inputs from an actual
// repository: it resolves the latest version tag, enumerates the commit range,
// and performs the ancestry and already-tagged sanity checks that gate the
// decision. All of its failures are reported as diagnostics and collapse to
// "no release", never a crashed workflow.
package nextversion
