package aggregate

import "sort"

// Ranked is one category with its count, in ranking order.
type Ranked struct {
	Category string
	Count    int
}

// TopN ranks categories descending by count and keeps the first n.
// Ties preserve the order of the category enumeration; categories
// absent from counts rank as zero. n <= 0 keeps everything.
func TopN(counts map[string]int, order []string, n int) []Ranked {
	ranked := make([]Ranked, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, Ranked{Category: category, Count: counts[category]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// Share computes the percentage of part within a known-only
// denominator. A zero denominator yields nil, never a division by
// zero.
func Share(part, known int) *float64 {
	if known <= 0 {
		return nil
	}

	pct := float64(part) / float64(known) * 100

	return &pct
}
