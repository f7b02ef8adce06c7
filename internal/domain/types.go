package domain

import (
	"encoding/json"
	"fmt"
)

// Document is a named block of transcript text.
type Document struct {
	Name    string
	Content string
}

// SpeakerKey is a short identifier for a document within one batch.
type SpeakerKey string

// SpeakerInfo describes one document of a batch after key resolution.
type SpeakerInfo struct {
	Name       string     `json:"name" yaml:"name"`
	Key        SpeakerKey `json:"key" yaml:"key"`
	TotalWords int        `json:"totalWords" yaml:"total_words"`
}

// ConceptDefinition groups surface forms counted as one concept.
// A nil SearchTerms means the field was missing; an empty slice is valid.
type ConceptDefinition struct {
	Name        string   `json:"name" yaml:"name"`
	SearchTerms []string `json:"searchTerms" yaml:"searchTerms"`
}

// Validate reports whether the definition carries its required fields.
func (c ConceptDefinition) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: concept missing name", ErrInvalidDefinition)
	}
	if c.SearchTerms == nil {
		return fmt.Errorf("%w: concept %q missing searchTerms", ErrInvalidDefinition, c.Name)
	}
	return nil
}

// ConceptCount holds per-speaker occurrence counts for one concept.
type ConceptCount struct {
	Name   string             `json:"name" yaml:"name"`
	Counts map[SpeakerKey]int `json:"counts" yaml:"counts"`
}

// ConceptFrequencies is the output of the concept frequency engine.
type ConceptFrequencies struct {
	Speakers []SpeakerInfo  `json:"speakers" yaml:"speakers"`
	Concepts []ConceptCount `json:"concepts" yaml:"concepts"`
}

// RadarDimensionDefinition names a radar axis and the concepts summed into it.
type RadarDimensionDefinition struct {
	Subject      string   `json:"subject" yaml:"subject"`
	ConceptNames []string `json:"conceptNames" yaml:"conceptNames"`
}

// Validate reports whether the dimension carries its required fields.
func (d RadarDimensionDefinition) Validate() error {
	if d.Subject == "" {
		return fmt.Errorf("%w: dimension missing subject", ErrInvalidDefinition)
	}
	if d.ConceptNames == nil {
		return fmt.Errorf("%w: dimension %q missing conceptNames", ErrInvalidDefinition, d.Subject)
	}
	return nil
}

// RadarRow is one chart-ready row: a subject plus a value per speaker.
type RadarRow struct {
	Subject string
	Values  map[SpeakerKey]int
}

// MarshalJSON encodes the row flat, as {"subject": ..., "<key>": n}.
func (r RadarRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		flat[string(k)] = v
	}
	flat["subject"] = r.Subject
	return json.Marshal(flat)
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (r RadarRow) MarshalYAML() (any, error) {
	flat := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		flat[string(k)] = v
	}
	flat["subject"] = r.Subject
	return flat, nil
}

// TopWordEntry is a word with its occurrence count.
type TopWordEntry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Definitions is the planning step's output: concepts and radar dimensions.
type Definitions struct {
	Concepts   []ConceptDefinition        `json:"concepts" yaml:"concepts"`
	Dimensions []RadarDimensionDefinition `json:"dimensions" yaml:"dimensions"`
}

// Validate checks every concept and dimension.
func (d Definitions) Validate() error {
	for _, c := range d.Concepts {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, dim := range d.Dimensions {
		if err := dim.Validate(); err != nil {
			return err
		}
	}
	return nil
}
