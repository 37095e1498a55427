// Package slug reduces route segments to lower-case ASCII alphanumerics and
// hyphens. Accented characters are transliterated where a decomposition
// exists; everything else outside the slug alphabet is dropped.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "é" becomes "e"
// before the ASCII filter runs. Chained transformers carry buffers, hence a
// fresh one per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Segment slugifies a single route segment: transliterate to ASCII where
// possible, case-fold, strip characters outside [a-z0-9-], collapse repeated
// hyphens, and trim leading/trailing hyphens.
func Segment(s string) string {
	if out, _, err := transform.String(stripMarks(), s); err == nil {
		s = out
	}
	// Casers are stateful, so one is built per call; routes resolve in
	// parallel across files.
	s = cases.Fold().String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
