// Package slug turns journal titles into file-name fragments.
package slug

import (
	"regexp"
	"strings"
)

// MaxLen bounds a slug so note paths stay readable.
const MaxLen = 40

var (
	apostrophes = strings.NewReplacer("'", "", "’", "")
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make lowercases input and joins its words with hyphens. "Today's walk"
// becomes "todays-walk". Long titles are cut on a word boundary.
func Make(input string) string {
	s := apostrophes.Replace(strings.ToLower(strings.TrimSpace(input)))
	s = strings.Trim(nonAlphaNum.ReplaceAllString(s, "-"), "-")
	if len(s) > MaxLen {
		s = s[:MaxLen]
		if cut := strings.LastIndexByte(s, '-'); cut > 0 {
			s = s[:cut]
		}
		s = strings.Trim(s, "-")
	}
	if s == "" {
		return "entry"
	}
	return s
}
