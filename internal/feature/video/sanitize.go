package video

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"•", "-",
	"…", "...",
)

// Sanitize maps model output down to the latin-1 range the PDF core fonts
// can render: smart punctuation is replaced and combining marks stripped.
func Sanitize(text string) string {
	text = punctReplacer.Replace(text)

	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(chain, text); err == nil {
		text = out
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || (r >= 0x20 && r < 0x100) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
