// Package analysis computes concept frequencies per speaker and folds them
// into radar dimensions. All functions are pure: every call allocates its own
// state and returns new values.
package analysis

import (
	"fmt"

	"brandradar/internal/domain"
	"brandradar/internal/speaker"
	"brandradar/internal/termcount"
	"brandradar/internal/textnorm"
)

// ComputeConceptFrequencies resolves a key for every document and counts
// each concept's surface forms in every document. Output order follows input
// order. A concept missing its name or search terms is rejected.
func ComputeConceptFrequencies(docs []domain.Document, concepts []domain.ConceptDefinition) (domain.ConceptFrequencies, error) {
	for i, c := range concepts {
		if err := c.Validate(); err != nil {
			return domain.ConceptFrequencies{}, fmt.Errorf("concept %d: %w", i, err)
		}
	}

	speakers := Speakers(docs)

	counts := make([]domain.ConceptCount, len(concepts))
	for i, c := range concepts {
		m := termcount.Compile(c.SearchTerms)
		cc := domain.ConceptCount{Name: c.Name, Counts: make(map[domain.SpeakerKey]int, len(docs))}
		for j, d := range docs {
			cc.Counts[speakers[j].Key] = m.Count(d.Content)
		}
		counts[i] = cc
	}

	return domain.ConceptFrequencies{Speakers: speakers, Concepts: counts}, nil
}

// Speakers resolves keys and word totals for a batch of documents.
func Speakers(docs []domain.Document) []domain.SpeakerInfo {
	r := speaker.NewResolver()
	out := make([]domain.SpeakerInfo, len(docs))
	for i, d := range docs {
		out[i] = domain.SpeakerInfo{
			Name:       d.Name,
			Key:        r.Resolve(d.Name),
			TotalWords: textnorm.WordCount(d.Content),
		}
	}
	return out
}
