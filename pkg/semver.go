package nextversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects how version tags are parsed and rendered.
//
// StyleXYZ is the usual three-component semantic version (e.g. 1.12.3).
// StyleXY renders only two components (e.g. 0.51); in that style a patch
// bump behaves like a minor bump, since there is no patch slot to increment.
type Style string

const (
	StyleXYZ Style = "X.Y.Z"
	StyleXY  Style = "X.Y"
)

// ParseStyle normalizes a version-style string. The empty string defaults to
// StyleXYZ.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return StyleXYZ, nil
	case StyleXYZ:
		return StyleXYZ, nil
	case StyleXY:
		return StyleXY, nil
	default:
		return "", fmt.Errorf("invalid version style: %q", s)
	}
}

// Version is a parsed release version. For StyleXY the Patch component is
// always zero and is omitted when rendering.
type Version struct {
	Major int
	Minor int
	Patch int
	Style Style
}

// ZeroVersion returns the first-release baseline for the given style
// (0.0.0 for X.Y.Z, 0.0 for X.Y).
func ZeroVersion(style Style) Version {
	return Version{Style: style}
}

// ParseVersion parses a version tag in the given style. A leading "v" is
// stripped. The tag must have exactly the number of components the style
// calls for, each a non-negative integer.
func ParseVersion(tag string, style Style) (Version, error) {
	s := strings.TrimPrefix(strings.TrimSpace(tag), "v")

	parts := strings.Split(s, ".")
	want := 3
	if style == StyleXY {
		want = 2
	}
	if len(parts) != want {
		return Version{}, fmt.Errorf("invalid version %q for style %s", tag, style)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.HasPrefix(p, "+") {
			return Version{}, fmt.Errorf("invalid version component %q in %q", p, tag)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1], Style: style}
	if style == StyleXYZ {
		v.Patch = nums[2]
	}
	return v, nil
}

// String renders the version without a "v" prefix, per the style.
func (v Version) String() string {
	if v.Style == StyleXY {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the next version for the given decision:
//
//   - DecisionMajor: (M, N, P) -> (M+1, 0, 0)
//   - DecisionMinor: (M, N, P) -> (M, N+1, 0)
//   - DecisionPatch: (M, N, P) -> (M, N, P+1), or a minor bump for StyleXY
//
// DecisionNone carries no next version; callers must handle it before getting
// here. Any other value indicates the decision table was not applied
// exhaustively, so both panic.
func (v Version) Bump(d Decision) Version {
	switch d {
	case DecisionMajor:
		return Version{Major: v.Major + 1, Style: v.Style}
	case DecisionMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1, Style: v.Style}
	case DecisionPatch:
		if v.Style == StyleXY {
			return Version{Major: v.Major, Minor: v.Minor + 1, Style: v.Style}
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1, Style: v.Style}
	default:
		panic(fmt.Sprintf("nextversion: no version bump for decision %v", d))
	}
}
