package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"brandradar/internal/textnorm"
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// ExcerptSummarizer ranks sentences by term frequency (stopwords filtered)
// and returns the best ones in their original order.
type ExcerptSummarizer struct{}

// NewExcerptSummarizer creates a frequency-based sentence ranker.
func NewExcerptSummarizer() *ExcerptSummarizer { return &ExcerptSummarizer{} }

// Summarize returns up to maxSentences representative sentences from text.
func (s *ExcerptSummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}

	tokens := make([][]string, len(sentences))
	freq := map[string]float64{}
	for i, sent := range sentences {
		tokens[i] = contentTerms(sent)
		for _, tok := range tokens[i] {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		maxF = math.Max(maxF, v)
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i := range sentences {
		sum := 0.0
		for _, tok := range tokens[i] {
			sum += freq[tok] / maxF
		}
		// Damp long sentences so they do not win on length alone.
		if l := len(tokens[i]); l > 0 {
			sum /= math.Sqrt(float64(l))
		}
		scores[i] = scored{i, sum}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := range selected {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " "), nil
}

func contentTerms(text string) []string {
	var out []string
	for _, tok := range textnorm.TermTokens(text) {
		if len(tok) < minTermLength || IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
