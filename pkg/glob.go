package nextversion

import (
	"log"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesAny reports whether path matches any of the glob patterns. Patterns
// use shell-glob semantics where `*` stays within a path segment and `**`
// crosses segments (e.g. "resources/**"). An empty pattern set matches
// nothing. A pattern that fails to compile is treated as non-matching and
// logged, so one bad glob cannot sink the whole decision.
func MatchesAny(path string, patterns []string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range patterns {
		ok, err := doublestar.Match(filepath.ToSlash(pattern), path)
		if err != nil {
			log.Printf("warning: ignoring malformed pattern %q: %v", pattern, err)
			continue
		}
		if ok {
			debugf("path %q covered by ignore pattern %q", path, pattern)
			return true
		}
	}
	return false
}
