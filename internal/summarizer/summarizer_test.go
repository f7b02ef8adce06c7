package summarizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandradar/internal/domain"
)

func TestTopTerms_ExcludesStopwords(t *testing.T) {
	t.Parallel()

	got := TopTerms("I think the team is great and the team works well", 30)
	require.NotEmpty(t, got)
	assert.Equal(t, domain.TopWordEntry{Word: "team", Count: 2}, got[0])
	for _, e := range got[1:] {
		assert.Equal(t, 1, e.Count)
	}
	for _, e := range got {
		assert.False(t, IsStopword(e.Word), "stopword %q in result", e.Word)
		assert.NotContains(t, []string{"the", "is", "and"}, e.Word)
	}
}

func TestTopTerms_TieBreakKeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	got := TopTerms("zebra apple mango apple zebra kiwi", 10)
	assert.Equal(t, []domain.TopWordEntry{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 1},
		{Word: "kiwi", Count: 1},
	}, got)
}

func TestTopTerms_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []domain.TopWordEntry
	}{
		{"short words dropped", "ox ax brand", []domain.TopWordEntry{{Word: "brand", Count: 1}}},
		{"digits dropped", "2024 brand 99", []domain.TopWordEntry{{Word: "brand", Count: 1}}},
		{"quotes trimmed before length check", "'ab' 'brand'", []domain.TopWordEntry{{Word: "brand", Count: 1}}},
		{"case folded", "Brand BRAND brand", []domain.TopWordEntry{{Word: "brand", Count: 3}}},
		{"empty", "", []domain.TopWordEntry{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TopTerms(tt.input, 10))
		})
	}
}

func TestTopTerms_Limit(t *testing.T) {
	t.Parallel()

	assert.Len(t, TopTerms("alpha bravo charlie delta", 2), 2)

	words := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		words = append(words, strings.Repeat(string(rune('a'+i%26)), 3+i/26))
	}
	assert.Len(t, TopTerms(strings.Join(words, " "), 0), DefaultTopWords)
}

func TestBuildFrequencySummary(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{
		{Name: "Jane Doe", Content: "We value trust and education. Trust matters."},
		{Name: "John Doe", Content: "Education is our focus, not trust."},
	}
	want := "Speaker: Jane Doe (JD)\n" +
		"Total words: 7\n" +
		"Top words: trust (2), value (1), education (1), matters (1)\n" +
		"\n" +
		"Speaker: John Doe (J2)\n" +
		"Total words: 6\n" +
		"Top words: education (1), focus (1), trust (1)"
	assert.Equal(t, want, BuildFrequencySummary(docs, 30))
	assert.Empty(t, BuildFrequencySummary(nil, 30))
}

func TestSummarizer_WithExcerpts(t *testing.T) {
	t.Parallel()

	docs := []domain.Document{{
		Name:    "Jane Doe",
		Content: "Trust drives our brand. The weather was nice. Customers trust the brand.",
	}}
	out, err := New(5, WithExcerpts(NewExcerptSummarizer(), 1)).Summarize(docs)
	require.NoError(t, err)
	assert.Contains(t, out, "\nExcerpt: ")
	assert.NotContains(t, out, "weather was nice")
}

type failingSummarizer struct{}

func (failingSummarizer) Summarize(string, int) (string, error) {
	return "", errors.New("boom")
}

func TestSummarizer_ExcerptError(t *testing.T) {
	t.Parallel()

	_, err := New(5, WithExcerpts(failingSummarizer{}, 2)).Summarize([]domain.Document{{Name: "A", Content: "x."}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExcerptSummarizer_KeepsOriginalOrder(t *testing.T) {
	t.Parallel()

	text := "Brand trust matters. Lunch was late. Brand trust grows. Parking is hard."
	got, err := NewExcerptSummarizer().Summarize(text, 2)
	require.NoError(t, err)
	assert.Equal(t, "Brand trust matters. Brand trust grows.", got)
}

func TestExcerptSummarizer_NoSentences(t *testing.T) {
	t.Parallel()

	got, err := NewExcerptSummarizer().Summarize("  no terminal punctuation  ", 2)
	require.NoError(t, err)
	assert.Equal(t, "no terminal punctuation", got)
}
