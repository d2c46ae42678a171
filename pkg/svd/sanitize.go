package svd

import (
	"strings"
	"unicode"
)

// folder names are bounded so deeply-nested titles can't blow past
// filesystem path limits.
const maxTitleLength = 100

// SafeTitle reduces a media title to a filesystem-safe folder name:
// letters, digits, spaces, hyphens, and underscores survive; everything
// else is stripped. Trailing spaces are trimmed and the result is capped
// at 100 runes.
func SafeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	safe := b.String()
	if runes := []rune(safe); len(runes) > maxTitleLength {
		safe = string(runes[:maxTitleLength])
	}
	// trim after truncation so the cut itself can't leave a trailing
	// space
	return strings.TrimRight(safe, " ")
}
