package analysis

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandradar/internal/domain"
)

func doeDocs() []domain.Document {
	return []domain.Document{
		{Name: "Jane Doe", Content: "We value trust and education. Trust matters."},
		{Name: "John Doe", Content: "Education is our focus, not trust."},
	}
}

func doeConcepts() []domain.ConceptDefinition {
	return []domain.ConceptDefinition{
		{Name: "trust", SearchTerms: []string{"trust"}},
		{Name: "education", SearchTerms: []string{"education", "educational"}},
	}
}

func TestComputeConceptFrequencies_EndToEnd(t *testing.T) {
	t.Parallel()

	got, err := ComputeConceptFrequencies(doeDocs(), doeConcepts())
	require.NoError(t, err)

	require.Len(t, got.Speakers, 2)
	assert.Equal(t, domain.SpeakerInfo{Name: "Jane Doe", Key: "JD", TotalWords: 7}, got.Speakers[0])
	assert.Equal(t, domain.SpeakerInfo{Name: "John Doe", Key: "J2", TotalWords: 6}, got.Speakers[1])

	require.Len(t, got.Concepts, 2)
	assert.Equal(t, "trust", got.Concepts[0].Name)
	assert.Equal(t, map[domain.SpeakerKey]int{"JD": 2, "J2": 1}, got.Concepts[0].Counts)
	assert.Equal(t, "education", got.Concepts[1].Name)
	assert.Equal(t, map[domain.SpeakerKey]int{"JD": 1, "J2": 1}, got.Concepts[1].Counts)
}

func TestComputeConceptFrequencies_EmptySearchTerms(t *testing.T) {
	t.Parallel()

	got, err := ComputeConceptFrequencies(doeDocs(), []domain.ConceptDefinition{
		{Name: "nothing", SearchTerms: []string{}},
	})
	require.NoError(t, err)
	require.Len(t, got.Concepts, 1)
	for _, s := range got.Speakers {
		count, ok := got.Concepts[0].Counts[s.Key]
		assert.True(t, ok, "missing count for %s", s.Key)
		assert.Zero(t, count)
	}
}

func TestComputeConceptFrequencies_EmptyInputs(t *testing.T) {
	t.Parallel()

	got, err := ComputeConceptFrequencies(nil, doeConcepts())
	require.NoError(t, err)
	assert.Empty(t, got.Speakers)
	require.Len(t, got.Concepts, 2)
	assert.Empty(t, got.Concepts[0].Counts)

	got, err = ComputeConceptFrequencies([]domain.Document{{Name: "Solo"}}, doeConcepts())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Speakers[0].TotalWords)
	assert.Equal(t, 0, got.Concepts[0].Counts["SO"])
}

func TestComputeConceptFrequencies_InvalidDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		concept domain.ConceptDefinition
	}{
		{"missing name", domain.ConceptDefinition{SearchTerms: []string{"x"}}},
		{"missing search terms", domain.ConceptDefinition{Name: "x"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ComputeConceptFrequencies(doeDocs(), []domain.ConceptDefinition{tt.concept})
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	}
}

func TestComputeConceptFrequencies_Idempotent(t *testing.T) {
	t.Parallel()

	docs, concepts := doeDocs(), doeConcepts()
	first, err := ComputeConceptFrequencies(docs, concepts)
	require.NoError(t, err)
	second, err := ComputeConceptFrequencies(docs, concepts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, doeDocs(), docs)
	assert.Equal(t, doeConcepts(), concepts)
}

func TestComputeConceptFrequencies_Concurrent(t *testing.T) {
	t.Parallel()

	want, err := ComputeConceptFrequencies(doeDocs(), doeConcepts())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.ConceptFrequencies, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = ComputeConceptFrequencies(doeDocs(), doeConcepts())
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestComputeRadarFromConcepts(t *testing.T) {
	t.Parallel()

	speakers := []domain.SpeakerInfo{{Name: "X Ray", Key: "X"}}
	concepts := []domain.ConceptCount{
		{Name: "A", Counts: map[domain.SpeakerKey]int{"X": 2}},
		{Name: "B", Counts: map[domain.SpeakerKey]int{"X": 3}},
	}

	tests := []struct {
		name  string
		names []string
		want  int
	}{
		{"both", []string{"A", "B"}, 5},
		{"only A", []string{"A"}, 2},
		{"unknown", []string{"nope"}, 0},
		{"case insensitive", []string{"a", "b"}, 5},
		{"no substring match", []string{"AB"}, 0},
		{"duplicate sums twice", []string{"A", "A"}, 4},
		{"empty list", []string{}, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rows, err := ComputeRadarFromConcepts(concepts, speakers, []domain.RadarDimensionDefinition{
				{Subject: "dim", ConceptNames: tt.names},
			})
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "dim", rows[0].Subject)
			assert.Equal(t, map[domain.SpeakerKey]int{"X": tt.want}, rows[0].Values)
		})
	}
}

func TestComputeRadarFromConcepts_Order(t *testing.T) {
	t.Parallel()

	freq, err := ComputeConceptFrequencies(doeDocs(), doeConcepts())
	require.NoError(t, err)

	rows, err := ComputeRadarFromConcepts(freq.Concepts, freq.Speakers, []domain.RadarDimensionDefinition{
		{Subject: "Learning", ConceptNames: []string{"Education"}},
		{Subject: "Integrity", ConceptNames: []string{"trust"}},
		{Subject: "Overall", ConceptNames: []string{"trust", "education"}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Learning", rows[0].Subject)
	assert.Equal(t, map[domain.SpeakerKey]int{"JD": 1, "J2": 1}, rows[0].Values)
	assert.Equal(t, map[domain.SpeakerKey]int{"JD": 2, "J2": 1}, rows[1].Values)
	assert.Equal(t, map[domain.SpeakerKey]int{"JD": 3, "J2": 2}, rows[2].Values)
}

func TestComputeRadarFromConcepts_InvalidDimension(t *testing.T) {
	t.Parallel()

	_, err := ComputeRadarFromConcepts(nil, nil, []domain.RadarDimensionDefinition{{Subject: "x"}})
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)

	_, err = ComputeRadarFromConcepts(nil, nil, []domain.RadarDimensionDefinition{{ConceptNames: []string{}}})
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
}

func TestRadarRow_MarshalJSON(t *testing.T) {
	t.Parallel()

	row := domain.RadarRow{Subject: "Trust", Values: map[domain.SpeakerKey]int{"JD": 2, "J2": 1}}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject":"Trust","JD":2,"J2":1}`, string(data))
}
