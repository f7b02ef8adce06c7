package analysis

import (
	"fmt"
	"strings"

	"brandradar/internal/domain"
)

// ComputeRadarFromConcepts sums concept counts into one row per dimension.
// Concept names match labels case-insensitively; unknown names add zero and
// a name listed twice is summed twice.
func ComputeRadarFromConcepts(concepts []domain.ConceptCount, speakers []domain.SpeakerInfo, dims []domain.RadarDimensionDefinition) ([]domain.RadarRow, error) {
	for i, d := range dims {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	byName := make(map[string]domain.ConceptCount, len(concepts))
	for _, c := range concepts {
		key := strings.ToLower(c.Name)
		if _, dup := byName[key]; dup {
			continue
		}
		byName[key] = c
	}

	rows := make([]domain.RadarRow, len(dims))
	for i, d := range dims {
		row := domain.RadarRow{Subject: d.Subject, Values: make(map[domain.SpeakerKey]int, len(speakers))}
		for _, s := range speakers {
			sum := 0
			for _, name := range d.ConceptNames {
				if c, ok := byName[strings.ToLower(name)]; ok {
					sum += c.Counts[s.Key]
				}
			}
			row.Values[s.Key] = sum
		}
		rows[i] = row
	}
	return rows, nil
}
