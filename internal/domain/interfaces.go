package domain

// Summarizer picks representative sentences from the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// AnalysisService defines the operations exposed by the application core.
type AnalysisService interface {
	IngestDocuments(paths []string) ([]Document, error)
	Summary() (string, error)
	Radar(defs Definitions) (ConceptFrequencies, []RadarRow, error)
	CountTerms(terms []string) (ConceptFrequencies, error)
}
