// Package aggregate computes every derived figure the dashboards
// present: category counts, YoY deltas, monthly series, spatial bins,
// rankings, shares and the composite insight bundle. Every function is
// a pure function of the filtered view(s) it receives; an empty view
// yields zero counts and empty series, never an error.
package aggregate

import (
	"github.com/ufabox/InfoViz-25W/internal/dataset"
)

// Classifier maps a record to its category label for grouping.
type Classifier func(dataset.Record) string

// CountBy groups records by classifier and counts rows per category.
func CountBy(view []dataset.Record, classify Classifier) map[string]int {
	counts := make(map[string]int)

	for i := range view {
		counts[classify(view[i])]++
	}

	return counts
}

// DistinctCollisionsBy groups records by classifier and counts
// distinct collision identifiers per category. One collision
// contributing several casualty rows in the same category counts
// once; the same collision may still count under several categories.
func DistinctCollisionsBy(view []dataset.Record, classify Classifier) map[string]int {
	seen := make(map[string]map[string]struct{})

	for i := range view {
		category := classify(view[i])

		set, ok := seen[category]
		if !ok {
			set = make(map[string]struct{})
			seen[category] = set
		}

		set[view[i].CollisionIndex] = struct{}{}
	}

	counts := make(map[string]int, len(seen))
	for category, set := range seen {
		counts[category] = len(set)
	}

	return counts
}

// DistinctCollisions counts distinct collision identifiers across the
// whole view.
func DistinctCollisions(view []dataset.Record) int {
	set := make(map[string]struct{})

	for i := range view {
		set[view[i].CollisionIndex] = struct{}{}
	}

	return len(set)
}

// CountsInOrder projects a count map onto an explicit category order,
// filling absent categories with zero.
func CountsInOrder(counts map[string]int, order []string) []int {
	out := make([]int, len(order))
	for i, category := range order {
		out[i] = counts[category]
	}

	return out
}
