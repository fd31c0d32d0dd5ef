package domain

import (
	"sort"
	"strconv"
)

// CandidateSet accumulates directory entry IDs discovered while resolving one
// source record. IDs are duplicate-free; ordering only matters once the
// consolidator asks for a numeric sort.
type CandidateSet struct {
	ids map[string]struct{}
}

// NewCandidateSet creates an empty candidate set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{ids: make(map[string]struct{})}
}

// Add inserts one ID, ignoring blanks and duplicates.
func (s *CandidateSet) Add(id string) {
	if id == "" {
		return
	}
	s.ids[id] = struct{}{}
}

// AddAll inserts every ID from the slice.
func (s *CandidateSet) AddAll(ids []string) {
	for _, id := range ids {
		s.Add(id)
	}
}

// Contains reports whether the ID is present.
func (s *CandidateSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of distinct IDs.
func (s *CandidateSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in unspecified order.
func (s *CandidateSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// SortedNumeric returns the members sorted ascending by numeric value.
// IDs are directory-assigned and numeric-valued; any ID that fails to parse
// sorts by plain string comparison ahead of parseable ones.
func (s *CandidateSet) SortedNumeric() []string {
	out := s.IDs()
	sort.Slice(out, func(i, j int) bool {
		a, aErr := strconv.ParseInt(out[i], 10, 64)
		b, bErr := strconv.ParseInt(out[j], 10, 64)
		if aErr != nil || bErr != nil {
			if (aErr == nil) != (bErr == nil) {
				return aErr != nil
			}
			return out[i] < out[j]
		}
		return a < b
	})
	return out
}
