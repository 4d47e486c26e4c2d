package nextversion

import "testing"

func TestScanTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Token
	}{
		{"major", "Rework API [major]", TokenMajor},
		{"minor", "Add [minor] feature", TokenMinor},
		{"patch", "fix: squashed a bug [patch]", TokenPatch},
		{"fix alias", "[fix] null deref", TokenPatch},
		{"bump alias", "chore [bump]", TokenPatch},
		{"no-bump", "update README [no-bump]", TokenNoBump},
		{"no_bump alias", "update README [no_bump]", TokenNoBump},
		{"nobump alias", "update README [nobump]", TokenNoBump},
		{"case insensitive", "breaking change [MAJOR]", TokenMajor},
		{"mixed case", "Add [MiNoR] feature", TokenMinor},
		{"no token", "fix: bug", TokenNone},
		{"unbracketed word", "major overhaul of docs", TokenNone},
		{"empty", "", TokenNone},
		{"token only in body", "docs: typo\n\nSee [major] discussion in #42", TokenNone},
		{"highest wins within title", "do it all [minor] [major]", TokenMajor},
		{"patch does not hide major", "fixes [patch] plus [major] rework", TokenMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanTitle(tt.message); got != tt.want {
				t.Errorf("scanTitle(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     Token
	}{
		{"empty batch", nil, TokenNone},
		{"no tokens anywhere", []string{"fix: bug", "docs: typo"}, TokenNone},
		{"single minor", []string{"fix: bug", "Add [minor] feature"}, TokenMinor},
		{"major beats minor", []string{"Add [minor] feature", "Drop legacy API [major]"}, TokenMajor},
		{"order independent", []string{"Drop legacy API [major]", "Add [minor] feature"}, TokenMajor},
		{"major among unlabelled", []string{"chore", "tweak", "[major] redesign", "cleanup"}, TokenMajor},
		{"explicit token beats no-bump", []string{"[no-bump] ci tweak", "[patch] real fix"}, TokenPatch},
		{"no-bump beats nothing", []string{"some work", "[no-bump] ci tweak"}, TokenNoBump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScanTokens(tt.messages); got != tt.want {
				t.Errorf("ScanTokens(%v) = %s, want %s", tt.messages, got, tt.want)
			}
		})
	}
}
