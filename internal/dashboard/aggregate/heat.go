package aggregate

import (
	"fmt"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// HoursPerDay is the hour axis length of the time heatmap.
const HoursPerDay = 24

// ClassSeverityRow is one casualty class with its per-severity counts,
// the input of the 100% stacked class chart.
type ClassSeverityRow struct {
	Class   string
	Fatal   int
	Serious int
	Slight  int
}

// Total returns the row total across the three known severities.
func (r ClassSeverityRow) Total() int {
	return r.Fatal + r.Serious + r.Slight
}

// ClassSeverityRows tallies known-severity casualties per class, in
// class display order. Rows with no casualties are kept so the class
// axis stays stable.
func ClassSeverityRows(view []dataset.Record) []ClassSeverityRow {
	byClass := make(map[int]*ClassSeverityRow)

	rows := make([]ClassSeverityRow, 0, len(taxonomy.ClassOrder))

	for _, class := range taxonomy.ClassOrder {
		rows = append(rows, ClassSeverityRow{Class: taxonomy.ClassLabel(class)})
		byClass[class] = &rows[len(rows)-1]
	}

	for i := range view {
		class := view[i].CasualtyClass
		if _, ok := byClass[class]; !ok {
			class = taxonomy.ClassUnknown
		}

		switch taxonomy.ParseSeverity(view[i].Severity) {
		case taxonomy.SeverityFatal:
			byClass[class].Fatal++
		case taxonomy.SeveritySerious:
			byClass[class].Serious++
		case taxonomy.SeveritySlight:
			byClass[class].Slight++
		case taxonomy.SeverityUnknown:
			// Unknown severity stays out of the stacked chart.
		}
	}

	return rows
}

// HeatCell is one age-band x class cell of the KSI heatmap.
type HeatCell struct {
	Class    string
	AgeBand  string
	Count    int
	KSI      int
	KSIShare float64 // 0 when the cell is empty.
}

// AgeClassCells tallies casualties and their KSI share per age band x
// casualty class cell. Every cell of the full cross product is
// present, zeros included.
func AgeClassCells(view []dataset.Record) []HeatCell {
	index := make(map[string]*HeatCell)

	cells := make([]HeatCell, 0, len(taxonomy.ClassOrder)*len(taxonomy.AgeBands))

	for _, class := range taxonomy.ClassOrder {
		for _, band := range taxonomy.AgeBands {
			cells = append(cells, HeatCell{Class: taxonomy.ClassLabel(class), AgeBand: band})
			index[taxonomy.ClassLabel(class)+"|"+band] = &cells[len(cells)-1]
		}
	}

	for i := range view {
		key := taxonomy.ClassLabel(view[i].CasualtyClass) + "|" + taxonomy.AgeBand(view[i].CasualtyAge)

		cell, ok := index[key]
		if !ok {
			continue
		}

		cell.Count++

		if taxonomy.ParseSeverity(view[i].Severity).IsKSI() {
			cell.KSI++
		}
	}

	for i := range cells {
		if cells[i].Count > 0 {
			cells[i].KSIShare = float64(cells[i].KSI) / float64(cells[i].Count)
		}
	}

	return cells
}

// TimeCell is one day x hour cell of the time heatmap.
type TimeCell struct {
	Day   string
	Hour  int
	Count int
}

// TimeCells tallies casualties per day-of-week x hour. The full
// 7 x 24 grid comes back, zeros included, Monday first. Records with
// an unknown day or hour are dropped from the grid.
func TimeCells(view []dataset.Record) []TimeCell {
	counts := make(map[string]int)

	for i := range view {
		day := taxonomy.DayName(view[i].DayOfWeek)
		if day == "" || view[i].Hour < 0 || view[i].Hour >= HoursPerDay {
			continue
		}

		counts[fmt.Sprintf("%s|%02d", day, view[i].Hour)]++
	}

	cells := make([]TimeCell, 0, len(taxonomy.DayNames)*HoursPerDay)

	for _, day := range taxonomy.DayNames {
		for hour := range HoursPerDay {
			cells = append(cells, TimeCell{
				Day:   day,
				Hour:  hour,
				Count: counts[fmt.Sprintf("%s|%02d", day, hour)],
			})
		}
	}

	return cells
}

// TopCasualtyTypes ranks casualty types by row count and keeps the
// first n.
func TopCasualtyTypes(view []dataset.Record, n int) []Ranked {
	counts := make(map[string]int)

	var order []string

	for i := range view {
		label := taxonomy.CasualtyTypeLabel(view[i].CasualtyType)

		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}

		counts[label]++
	}

	return TopN(counts, order, n)
}
