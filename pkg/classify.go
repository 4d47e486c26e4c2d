package nextversion

// AllIgnored reports whether the change set as a whole is ignorable: true
// when there are no changed paths (think: git commit --allow-empty to poke
// CI), or when every changed path matches an ignore pattern.
func AllIgnored(changedPaths []string, ignorePatterns []string) bool {
	for _, p := range changedPaths {
		if !MatchesAny(p, ignorePatterns) {
			debugf("found a changed non-ignored file: %s", p)
			return false
		}
	}
	return true
}
