// Package textnorm lower-cases and tokenizes transcript text.
//
// Folding is ASCII-oriented: after lower-casing, any character outside
// [a-z0-9], whitespace, apostrophe and hyphen is replaced with a space, so
// non-ASCII letters act as separators.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	matchStrip = regexp.MustCompile(`[^a-z0-9\s'-]`)
	termStrip  = regexp.MustCompile(`[^a-z\s'-]`)
)

// Normalize lower-cases text and replaces disallowed characters with spaces.
func Normalize(text string) string {
	return matchStrip.ReplaceAllString(strings.ToLower(text), " ")
}

// Tokens returns the whitespace-separated words of the normalized text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// WordCount returns the number of tokens in text, stopwords included.
func WordCount(text string) int {
	return len(Tokens(text))
}

// TermTokens tokenizes for term extraction: digits are dropped as well and
// each token is trimmed of leading and trailing apostrophes and hyphens.
// Tokens that trim to nothing are skipped.
func TermTokens(text string) []string {
	fields := strings.Fields(termStrip.ReplaceAllString(strings.ToLower(text), " "))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
