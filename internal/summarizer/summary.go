// Package summarizer extracts top terms per transcript and renders the
// frequency summary handed to the concept planning step.
package summarizer

import (
	"fmt"
	"strings"

	"brandradar/internal/domain"
	"brandradar/internal/speaker"
	"brandradar/internal/textnorm"
)

// Summarizer renders per-document frequency summaries.
type Summarizer struct {
	topWords     int
	maxSentences int
	excerpts     domain.Summarizer
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithExcerpts adds an "Excerpt:" line with up to n ranked sentences.
func WithExcerpts(s domain.Summarizer, n int) Option {
	return func(sum *Summarizer) {
		sum.excerpts = s
		sum.maxSentences = n
	}
}

// New creates a Summarizer listing topWords terms per document.
func New(topWords int, opts ...Option) *Summarizer {
	s := &Summarizer{topWords: topWords}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Summarize renders one block per document, separated by blank lines.
// Keys are resolved over the whole batch and match the analysis keys.
func (s *Summarizer) Summarize(docs []domain.Document) (string, error) {
	r := speaker.NewResolver()
	blocks := make([]string, 0, len(docs))
	for _, d := range docs {
		var b strings.Builder
		fmt.Fprintf(&b, "Speaker: %s (%s)\n", d.Name, r.Resolve(d.Name))
		fmt.Fprintf(&b, "Total words: %d\n", textnorm.WordCount(d.Content))
		b.WriteString("Top words: ")
		b.WriteString(FormatTopTerms(TopTerms(d.Content, s.topWords)))
		if s.excerpts != nil && s.maxSentences > 0 {
			excerpt, err := s.excerpts.Summarize(d.Content, s.maxSentences)
			if err != nil {
				return "", fmt.Errorf("excerpt for %q: %w", d.Name, err)
			}
			if excerpt != "" {
				b.WriteString("\nExcerpt: ")
				b.WriteString(excerpt)
			}
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

// BuildFrequencySummary renders the summary with n top words per document.
func BuildFrequencySummary(docs []domain.Document, n int) string {
	out, _ := New(n).Summarize(docs)
	return out
}

// FormatTopTerms renders entries as "word (count), ...".
func FormatTopTerms(entries []domain.TopWordEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (%d)", e.Word, e.Count)
	}
	return strings.Join(parts, ", ")
}
