package aggregate

import "math"

// Delta is the year-over-year change for one category. Percent is nil
// when the delta is not computable (prior zero, current positive).
type Delta struct {
	Category string
	Current  int
	Prior    int
	Percent  *float64
}

// YoY computes the percentage change from prior to current. Both zero
// yields 0; a positive current against a zero prior is not computable
// and yields nil rather than infinity.
func YoY(current, prior int) *float64 {
	if prior == 0 {
		if current == 0 {
			zero := 0.0

			return &zero
		}

		return nil
	}

	pct := float64(current-prior) / float64(prior) * 100

	return &pct
}

// Deltas computes per-category YoY deltas in the given category order.
func Deltas(order []string, current, prior map[string]int) []Delta {
	out := make([]Delta, len(order))

	for i, category := range order {
		cur := current[category]
		pri := prior[category]

		out[i] = Delta{
			Category: category,
			Current:  cur,
			Prior:    pri,
			Percent:  YoY(cur, pri),
		}
	}

	return out
}

// BiggestMover returns the delta with the largest absolute computable
// percentage, or nil when none is computable. Ties keep the earlier
// category in enumeration order.
func BiggestMover(deltas []Delta) *Delta {
	var best *Delta

	for i := range deltas {
		if deltas[i].Percent == nil {
			continue
		}

		if best == nil || math.Abs(*deltas[i].Percent) > math.Abs(*best.Percent) {
			best = &deltas[i]
		}
	}

	return best
}
