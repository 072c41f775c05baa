package aggregate

import "github.com/ufabox/InfoViz-25W/internal/dataset"

// MonthsPerYear is the length of every monthly series.
const MonthsPerYear = 12

// MonthNames lists month display labels in series order.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyCollisions returns the distinct-collision count per month,
// index 0 = January. Records with an unknown month drop out of the
// series but remain in every non-monthly aggregate.
func MonthlyCollisions(view []dataset.Record) []int {
	perMonth := make([]map[string]struct{}, MonthsPerYear)

	for i := range view {
		month := view[i].Month
		if month < 1 || month > MonthsPerYear {
			continue
		}

		set := perMonth[month-1]
		if set == nil {
			set = make(map[string]struct{})
			perMonth[month-1] = set
		}

		set[view[i].CollisionIndex] = struct{}{}
	}

	out := make([]int, MonthsPerYear)
	for i, set := range perMonth {
		out[i] = len(set)
	}

	return out
}
