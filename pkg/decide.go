package nextversion

// Decision is the engine's verdict on what kind of release the commit range
// warrants. DecisionNone means no release.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionPatch
	DecisionMinor
	DecisionMajor
)

func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "none"
	case DecisionPatch:
		return "patch"
	case DecisionMinor:
		return "minor"
	case DecisionMajor:
		return "major"
	default:
		return "unknown"
	}
}

// Decide maps the effective token, the change classification, and the
// force-patch policy to a decision. Explicit tokens always win: [no-bump] is
// a veto regardless of what changed, and the other tokens bump regardless of
// ignore patterns. Only a tokenless batch falls through to path-based
// reasoning, where a fully ignored change set never releases and anything
// else releases only under the force-patch policy.
func Decide(token Token, ignorable bool, forcePatch bool) Decision {
	switch token {
	case TokenMajor:
		return DecisionMajor
	case TokenMinor:
		return DecisionMinor
	case TokenPatch:
		return DecisionPatch
	case TokenNoBump:
		return DecisionNone
	default: // TokenNone
		if ignorable {
			return DecisionNone
		}
		if forcePatch {
			return DecisionPatch
		}
		return DecisionNone
	}
}
