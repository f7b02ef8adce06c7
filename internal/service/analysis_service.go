package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"brandradar/internal/analysis"
	"brandradar/internal/domain"
	"brandradar/internal/summarizer"
)

var _ domain.AnalysisService = (*AnalysisServiceImpl)(nil)

// AnalysisServiceImpl ingests transcript files and runs the analysis core
// over the current batch.
type AnalysisServiceImpl struct {
	summary    *summarizer.Summarizer
	extensions []string
	log        *slog.Logger

	mu   sync.RWMutex
	docs []domain.Document
}

// NewAnalysisService wires the summary renderer, accepted file extensions and logger.
func NewAnalysisService(summary *summarizer.Summarizer, extensions []string, log *slog.Logger) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{summary: summary, extensions: extensions, log: log}
}

// IngestDocuments reads every matching file (globs allowed) as one document,
// replacing the current batch. Order follows the arguments, then glob order.
func (s *AnalysisServiceImpl) IngestDocuments(paths []string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !s.accepts(m) {
				s.log.Debug("skipping file", "path", m)
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read transcript: %w", err)
			}
			docs = append(docs, domain.Document{Name: DocumentName(m), Content: string(data)})
			s.log.Debug("ingested transcript", "path", m, "bytes", len(data))
		}
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}
	s.SetDocuments(docs)
	return docs, nil
}

// SetDocuments replaces the current batch with docs.
func (s *AnalysisServiceImpl) SetDocuments(docs []domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]domain.Document(nil), docs...)
}

// Documents returns a copy of the current batch.
func (s *AnalysisServiceImpl) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Document(nil), s.docs...)
}

// Summary renders the frequency summary for the current batch.
func (s *AnalysisServiceImpl) Summary() (string, error) {
	docs := s.Documents()
	s.log.Debug("building frequency summary", "documents", len(docs))
	return s.summary.Summarize(docs)
}

// Radar counts the definitions' concepts and folds them into dimensions.
func (s *AnalysisServiceImpl) Radar(defs domain.Definitions) (domain.ConceptFrequencies, []domain.RadarRow, error) {
	docs := s.Documents()
	freq, err := analysis.ComputeConceptFrequencies(docs, defs.Concepts)
	if err != nil {
		return domain.ConceptFrequencies{}, nil, fmt.Errorf("concept frequencies: %w", err)
	}
	rows, err := analysis.ComputeRadarFromConcepts(freq.Concepts, freq.Speakers, defs.Dimensions)
	if err != nil {
		return domain.ConceptFrequencies{}, nil, fmt.Errorf("radar: %w", err)
	}
	s.log.Debug("computed radar",
		"documents", len(docs), "concepts", len(freq.Concepts), "dimensions", len(rows))
	return freq, rows, nil
}

// CountTerms counts an ad-hoc list of surface forms as a single concept.
func (s *AnalysisServiceImpl) CountTerms(terms []string) (domain.ConceptFrequencies, error) {
	clean := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	concept := domain.ConceptDefinition{Name: strings.Join(clean, ", "), SearchTerms: clean}
	if concept.Name == "" {
		concept.Name = "(none)"
	}
	return analysis.ComputeConceptFrequencies(s.Documents(), []domain.ConceptDefinition{concept})
}

func (s *AnalysisServiceImpl) accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// DocumentName turns a transcript path into a display name:
// "interviews/jane_doe.txt" becomes "jane doe".
func DocumentName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
