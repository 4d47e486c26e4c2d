package nextversion

import "strings"

// Token is a bump marker recognized in a commit title. The zero value
// TokenNone means no marker was found. Values are ordered by precedence, so
// the effective token for a batch of commits is simply the maximum.
type Token int

const (
	TokenNone Token = iota
	TokenNoBump
	TokenPatch
	TokenMinor
	TokenMajor
)

// tokenSpellings maps each token to its bracketed spellings, checked
// case-insensitively. [patch], [fix] and [bump] are synonyms, as are the
// underscore/compact variants of [no-bump].
var tokenSpellings = []struct {
	token     Token
	spellings []string
}{
	{TokenMajor, []string{"[major]"}},
	{TokenMinor, []string{"[minor]"}},
	{TokenPatch, []string{"[patch]", "[fix]", "[bump]"}},
	{TokenNoBump, []string{"[no-bump]", "[no_bump]", "[nobump]"}},
}

func (t Token) String() string {
	switch t {
	case TokenNone:
		return "none"
	case TokenNoBump:
		return "no-bump"
	case TokenPatch:
		return "patch"
	case TokenMinor:
		return "minor"
	case TokenMajor:
		return "major"
	default:
		return "unknown"
	}
}

// scanTitle returns the highest-precedence token spelled out in a single
// commit title. Only the first line of the message is considered, so tokens
// quoted in a commit body never count.
func scanTitle(message string) Token {
	title, _, _ := strings.Cut(message, "\n")
	title = strings.ToLower(title)

	for _, ts := range tokenSpellings {
		for _, spelling := range ts.spellings {
			if strings.Contains(title, spelling) {
				return ts.token
			}
		}
	}
	return TokenNone
}

// ScanTokens reduces a batch of commit messages to one effective token: the
// highest-precedence token found in any single title. A lone [major] among
// otherwise unlabelled commits still forces a major bump.
func ScanTokens(messages []string) Token {
	effective := TokenNone
	for _, msg := range messages {
		if t := scanTitle(msg); t > effective {
			effective = t
		}
	}
	return effective
}
