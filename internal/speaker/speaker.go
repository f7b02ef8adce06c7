// Package speaker derives short, batch-unique keys from document names.
package speaker

import (
	"strconv"
	"strings"

	"brandradar/internal/domain"
)

// placeholder is used when a name has no non-blank parts.
const placeholder domain.SpeakerKey = "XX"

// Candidate returns the naive key for name, before collision handling.
// A one-letter single-part name yields a one-character key.
func Candidate(name string) domain.SpeakerKey {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return placeholder
	case 1:
		r := []rune(parts[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return domain.SpeakerKey(strings.ToUpper(string(r)))
	}
	initials := make([]rune, 0, 2)
	for _, p := range parts {
		initials = append(initials, []rune(p)[0])
		if len(initials) == 2 {
			break
		}
	}
	return domain.SpeakerKey(strings.ToUpper(string(initials)))
}

// Resolver hands out unique keys within a single batch.
// The zero value is not usable; create one per batch with NewResolver.
type Resolver struct {
	seen map[domain.SpeakerKey]struct{}
}

// NewResolver returns a resolver with an empty seen-set.
func NewResolver() *Resolver {
	return &Resolver{seen: make(map[domain.SpeakerKey]struct{})}
}

// Resolve returns a key for name that is unused in this batch and records it.
// On collision the first character of the candidate is suffixed with 2, 3, ...
func (r *Resolver) Resolve(name string) domain.SpeakerKey {
	key := Candidate(name)
	if _, taken := r.seen[key]; taken {
		first := string([]rune(string(key))[0])
		for n := 2; ; n++ {
			alt := domain.SpeakerKey(first + strconv.Itoa(n))
			if _, taken := r.seen[alt]; !taken {
				key = alt
				break
			}
		}
	}
	r.seen[key] = struct{}{}
	return key
}

// ResolveAll resolves keys for names in order using a fresh resolver.
func ResolveAll(names []string) []domain.SpeakerKey {
	r := NewResolver()
	keys := make([]domain.SpeakerKey, len(names))
	for i, n := range names {
		keys[i] = r.Resolve(n)
	}
	return keys
}
