// Package textnorm provides the text canonicalization helpers shared by the
// report parser and the identity hasher. They must stay deterministic: the
// match identity scheme depends on two runs over the same input producing the
// same bytes.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics removes combining marks, so "São Paulo" becomes "Sao Paulo".
// Input that cannot be decomposed is returned unchanged.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Slug lowercases a name, strips diacritics, maps spaces and hyphens to
// underscores and drops everything else that is not [a-z0-9_]. Used for match
// identities and the file names keyed by them.
func Slug(s string) string {
	s = strings.ToLower(StripDiacritics(strings.TrimSpace(s)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('_')
		}
	}

	return b.String()
}

// CollapseSpaces replaces every run of horizontal whitespace with a single
// space. Newlines are preserved.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(' ')
	}

	return b.String()
}
