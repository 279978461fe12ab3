package slug

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make turns arbitrary text into a lowercase token safe for a URL path.
// Accents are folded to ASCII, anything that is not a letter, digit,
// underscore, space or hyphen is dropped, and runs of spaces and hyphens
// become a single hyphen. Empty input yields "". Make(Make(s)) == Make(s).
func Make(s string) string {
	out := invalidChars.ReplaceAllString(foldASCII(s), "")
	out = strings.ToLower(out)
	out = separators.ReplaceAllString(out, "-")
	return strings.Trim(out, "-_")
}

// foldASCII decomposes s (NFKD) and keeps only the ASCII part, so "é"
// becomes "e" and characters without an ASCII base disappear.
func foldASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFKD.String(s) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}
