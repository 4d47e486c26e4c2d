package nextversion

import "log"

// Inputs is the single record the decision engine consumes. The surrounding
// collaborator (CI wiring, git plumbing) fills it in; the engine itself does
// no I/O and keeps no state between calls.
type Inputs struct {
	// PreviousVersion is the latest released version without a "v" prefix.
	// Empty means no previous release exists (first release).
	PreviousVersion string

	// Style selects X.Y.Z or X.Y versioning; empty defaults to X.Y.Z.
	Style Style

	// CommitTitles holds one title per commit since the previous release,
	// newest first.
	CommitTitles []string

	// ChangedPaths holds every file path changed since the previous release.
	ChangedPaths []string

	// IgnorePaths holds glob patterns for paths whose changes never warrant
	// a release on their own.
	IgnorePaths []string

	// ForcePatch makes a tokenless, non-ignorable change set produce a patch
	// release instead of no release.
	ForcePatch bool
}

// Next computes the next version string, or "" when no release is needed.
//
// With no previous version the result is always the baseline (0.0.0), no
// matter what the commits say: the first release is a terminal state, not a
// bump. A previous version that does not parse is treated the same way, with
// a diagnostic. Otherwise the commit titles are reduced to an effective
// token, the change set is classified against the ignore patterns, and the
// decision table picks the bump to apply.
func Next(in Inputs) (string, error) {
	style, err := ParseStyle(string(in.Style))
	if err != nil {
		return "", err
	}

	if in.PreviousVersion == "" {
		return ZeroVersion(style).String(), nil
	}
	prev, err := ParseVersion(in.PreviousVersion, style)
	if err != nil {
		log.Printf("warning: treating unparseable previous version as first release: %v", err)
		return ZeroVersion(style).String(), nil
	}

	token := ScanTokens(in.CommitTitles)
	ignorable := AllIgnored(in.ChangedPaths, in.IgnorePaths)
	debugf("previous=%s effective-token=%s ignorable=%t force-patch=%t",
		prev, token, ignorable, in.ForcePatch)

	decision := Decide(token, ignorable, in.ForcePatch)
	if decision == DecisionNone {
		debugf("commit log(s) don't signify a version bump")
		return "", nil
	}
	return prev.Bump(decision).String(), nil
}
