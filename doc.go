// Package main implements the next-version CLI tool.
//
// The next-version tool decides, once per CI run, what the next semantic
// version of a repository should be. It looks up the latest release tag,
// walks the commits made since that tag, and prints the next version as a
// bare MAJOR.MINOR.PATCH string (no "v" prefix) to stdout. When the commit
// range does not warrant a release it prints nothing, which callers treat as
// "no release needed". It never creates or pushes tags itself; that is left
// to the surrounding workflow.
//
// Command Usage:
//
//	next-version [flags]
//
// Flags:
//
//	-C:        Run as if started in the given directory. (Defaults to ".")
//	-verbose:  Print debug diagnostics to stderr while deciding.
//	-version:  Display the version of the next-version CLI tool and exit.
//
// How the decision is made:
//
// Each commit title in the range is scanned for a bump token: [major],
// [minor], [patch], [fix], [bump], or [no-bump] (case-insensitive, title
// line only). [patch], [fix], and [bump] are synonyms. When commits carry
// different tokens the highest-precedence one wins:
//
//	[major] > [minor] > [patch]/[fix]/[bump] > [no-bump] > (no token)
//
// A batch whose strongest token is [no-bump] never releases. A batch with no
// token at all releases only when it touched files outside IGNORE_PATHS and
// FORCE_PATCH_IF_NO_COMMIT_TOKEN is enabled (as a patch). A repository with
// no previous release tag always yields the baseline 0.0.0.
//
// Configuration (environment variables, .env honored):
//
//	LATEST_VERSION_TAG              Previous release tag. Resolved from git tags when unset.
//	FIRST_COMMIT                    Base of the commit range (exclusive). Defaults to the tag.
//	VERSION_STYLE                   "X.Y.Z" (default) or "X.Y". In X.Y projects a patch
//	                                bump behaves like a minor bump.
//	IGNORE_PATHS                    Newline-delimited glob patterns ("docs/**" style) whose
//	                                changes never trigger a release on their own.
//	FORCE_PATCH_IF_NO_COMMIT_TOKEN  Boolean, default false.
//
// Examples:
//
//	# Tag v1.4.2 exists, one commit titled "Add [minor] feature"
//	next-version
//	# -> 1.5.0
//
//	# Only docs changed, no tokens, IGNORE_PATHS="docs/**"
//	next-version
//	# -> (no output)
//
//	# No release tag yet
//	next-version
//	# -> 0.0.0
//
// Under GitHub Actions (GITHUB_OUTPUT set) the result is also appended as a
// "version" step output, empty when no release is warranted.
//
// For the programmatic API, see the documentation in the "pkg" package.
package main
