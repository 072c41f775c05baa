package dataset

import (
	"slices"
)

// Store holds the loaded records. It is populated exactly once by a
// loader and read-only afterwards; every consumer iterates the same
// backing slice.
type Store struct {
	records []Record
	years   []int
	loaded  bool
}

// NewStore builds a store from already-coerced records, deriving the
// sorted list of available years. Used by loaders and by tests.
func NewStore(records []Record) *Store {
	yearSet := make(map[int]struct{})

	for i := range records {
		yearSet[records[i].Year] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}

	slices.Sort(years)

	return &Store{records: records, years: years, loaded: true}
}

// Records returns the loaded records in load order. Callers must not
// mutate the returned slice.
func (s *Store) Records() []Record {
	return s.records
}

// Years returns the distinct collision years present, ascending.
func (s *Store) Years() []int {
	return s.years
}

// Loaded reports whether the store has been populated. Filter and
// aggregation surfaces reject work against an unloaded store.
func (s *Store) Loaded() bool {
	return s != nil && s.loaded
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}

// LatestYearPair returns the default comparison period: the most
// recent year and the one before it. With a single year loaded both
// are that year; with no years both are zero.
func (s *Store) LatestYearPair() (current, prior int) {
	if len(s.years) == 0 {
		return 0, 0
	}

	current = s.years[len(s.years)-1]
	prior = current

	if len(s.years) > 1 {
		prior = s.years[len(s.years)-2]
	}

	return current, prior
}
