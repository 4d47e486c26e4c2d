package nextversion

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the environment-supplied policy and range inputs. All fields
// are optional; zero values mean "resolve from the repository" (tag, range)
// or the documented default (style, policy).
type Config struct {
	// LatestVersionTag overrides latest-tag resolution, e.g. "v1.4.2".
	LatestVersionTag string

	// FirstCommit overrides the base of the commit range (exclusive). When
	// empty the previous release tag is used.
	FirstCommit string

	// VersionStyle is "X.Y.Z" (default) or "X.Y".
	VersionStyle Style

	// IgnorePaths are glob patterns, one per line in IGNORE_PATHS.
	IgnorePaths []string

	// ForcePatch mirrors FORCE_PATCH_IF_NO_COMMIT_TOKEN.
	ForcePatch bool
}

// ConfigFromEnv reads configuration from the process environment:
//
//	LATEST_VERSION_TAG              previous release tag (optional)
//	FIRST_COMMIT                    commit-range base (optional)
//	VERSION_STYLE                   "X.Y.Z" or "X.Y" (default "X.Y.Z")
//	IGNORE_PATHS                    newline-delimited glob patterns
//	FORCE_PATCH_IF_NO_COMMIT_TOKEN  boolean (default false)
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		LatestVersionTag: strings.TrimSpace(os.Getenv("LATEST_VERSION_TAG")),
		FirstCommit:      strings.TrimSpace(os.Getenv("FIRST_COMMIT")),
		IgnorePaths:      splitLines(os.Getenv("IGNORE_PATHS")),
	}

	style, err := ParseStyle(os.Getenv("VERSION_STYLE"))
	if err != nil {
		return Config{}, err
	}
	cfg.VersionStyle = style

	if raw := strings.TrimSpace(os.Getenv("FORCE_PATCH_IF_NO_COMMIT_TOKEN")); raw != "" {
		force, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return Config{}, fmt.Errorf("invalid FORCE_PATCH_IF_NO_COMMIT_TOKEN: %q", raw)
		}
		cfg.ForcePatch = force
	}

	return cfg, nil
}

// splitLines splits a newline-delimited value into trimmed, non-empty entries.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
