// Package termcount counts whole-word occurrences of surface forms in text.
package termcount

import (
	"regexp"
	"strings"

	"brandradar/internal/textnorm"
)

// Matcher holds compiled patterns for a fixed list of surface forms.
// It is immutable after Compile and safe for concurrent use.
type Matcher struct {
	patterns []*regexp.Regexp
}

// Compile builds a Matcher. Each form is lower-cased, escaped and anchored
// with word boundaries on both sides; multi-word forms match as phrases.
func Compile(terms []string) *Matcher {
	m := &Matcher{patterns: make([]*regexp.Regexp, 0, len(terms))}
	for _, t := range terms {
		expr := `\b` + regexp.QuoteMeta(strings.ToLower(t)) + `\b`
		m.patterns = append(m.patterns, regexp.MustCompile(expr))
	}
	return m
}

// Count returns the total matches of every form in text. Forms are matched
// independently, so a span matched by two forms is counted twice.
func (m *Matcher) Count(text string) int {
	if len(m.patterns) == 0 {
		return 0
	}
	padded := " " + textnorm.Normalize(text) + " "
	total := 0
	for _, re := range m.patterns {
		total += len(re.FindAllStringIndex(padded, -1))
	}
	return total
}

// Count is a one-shot helper around Compile and Matcher.Count.
func Count(text string, terms []string) int {
	return Compile(terms).Count(text)
}
