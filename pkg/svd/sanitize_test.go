package svd

import (
	"strings"
	"testing"
	"unicode"
)

func TestSafeTitle(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		title  string
		wanted string
	}{
		{
			name:   "already-safe",
			title:  "My Video_01 - final",
			wanted: "My Video_01 - final",
		},
		{
			name:   "strips-punctuation",
			title:  `Best? "Video": ever! (2024) [HD] / \ | <>`,
			wanted: "Best Video ever 2024 HD",
		},
		{
			name:   "keeps-unicode-letters",
			title:  "Đi học về — vlog",
			wanted: "Đi học về  vlog",
		},
		{
			name:   "trims-trailing-spaces",
			title:  "title!!!   ",
			wanted: "title",
		},
		{
			name:   "truncates-to-100",
			title:  strings.Repeat("a", 150),
			wanted: strings.Repeat("a", 100),
		},
		{
			name:   "truncates-runes-not-bytes",
			title:  strings.Repeat("ê", 150),
			wanted: strings.Repeat("ê", 100),
		},
		{
			name:   "no-trailing-space-at-truncation-boundary",
			title:  strings.Repeat("a", 99) + " tail",
			wanted: strings.Repeat("a", 99),
		},
		{
			name:   "only-punctuation",
			title:  "!!!???",
			wanted: "",
		},
		{
			name:   "empty",
			title:  "",
			wanted: "",
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			found := SafeTitle(testCase.title)
			if found != testCase.wanted {
				t.Fatalf(
					"safe title: wanted `%s`; found `%s`",
					testCase.wanted,
					found,
				)
			}
			if n := len([]rune(found)); n > 100 {
				t.Fatalf("safe title length: wanted <= 100 runes; found %d", n)
			}
			for _, r := range found {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
					r != ' ' && r != '-' && r != '_' {
					t.Fatalf("safe title contains disallowed rune `%c`", r)
				}
			}
		})
	}
}
