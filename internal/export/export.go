// Package export writes the filtered aggregates to an xlsx workbook,
// one sheet per dashboard table, so a filtered view can leave the
// dashboards for further analysis.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/view"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Sheet names in workbook order.
const (
	SheetSeverity = "Severity"
	SheetVehicles = "Vehicle Groups"
	SheetMonthly  = "Monthly"
	SheetInsights = "Insights"
)

// notAvailable marks a percentage that is not computable.
const notAvailable = "n/a"

// Exporter derives the workbook from a loaded store and the shared
// filter state.
type Exporter struct {
	store *dataset.Store
	state *state.State
}

// New creates an Exporter over the given store and state.
func New(store *dataset.Store, st *state.State) *Exporter {
	return &Exporter{store: store, state: st}
}

// WriteXLSX writes the workbook to w.
func (e *Exporter) WriteXLSX(w io.Writer) error {
	f, err := e.build()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}

	return nil
}

// SaveXLSX writes the workbook to path.
func (e *Exporter) SaveXLSX(path string) error {
	f, err := e.build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving %s: %w", path, err)
	}

	return nil
}

func (e *Exporter) build() (*excelize.File, error) {
	currentYear, priorYear := e.state.YearPair()
	current := view.Filtered(e.store.Records(), e.state, currentYear)
	prior := view.Filtered(e.store.Records(), e.state, priorYear)

	f := excelize.NewFile()

	writers := []struct {
		sheet string
		write func(f *excelize.File, sheet string) error
	}{
		{SheetSeverity, func(f *excelize.File, sheet string) error {
			return writeSeverity(f, sheet, current, prior, currentYear, priorYear)
		}},
		{SheetVehicles, func(f *excelize.File, sheet string) error {
			return writeVehicles(f, sheet, current, prior, currentYear, priorYear)
		}},
		{SheetMonthly, func(f *excelize.File, sheet string) error {
			return writeMonthly(f, sheet, current, prior, currentYear, priorYear)
		}},
		{SheetInsights, func(f *excelize.File, sheet string) error {
			return writeInsights(f, sheet, current, prior)
		}},
	}

	for _, sw := range writers {
		if _, err := f.NewSheet(sw.sheet); err != nil {
			return nil, fmt.Errorf("export: creating sheet %s: %w", sw.sheet, err)
		}

		if err := sw.write(f, sw.sheet); err != nil {
			return nil, err
		}
	}

	// Drop the implicit default sheet so the workbook opens on Severity.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export: dropping default sheet: %w", err)
	}

	index, err := f.GetSheetIndex(SheetSeverity)
	if err != nil {
		return nil, fmt.Errorf("export: locating %s: %w", SheetSeverity, err)
	}

	f.SetActiveSheet(index)

	return f, nil
}

func writeSeverity(f *excelize.File, sheet string, current, prior []dataset.Record, currentYear, priorYear int) error {
	if err := writeRow(f, sheet, 1, "Severity", strconv.Itoa(currentYear), strconv.Itoa(priorYear), "Change %"); err != nil {
		return err
	}

	order := make([]string, len(taxonomy.SeverityOrder))
	for i, sev := range taxonomy.SeverityOrder {
		order[i] = sev.Label()
	}

	deltas := aggregate.Deltas(order,
		aggregate.SeverityCounts(current),
		aggregate.SeverityCounts(prior))

	for i, delta := range deltas {
		err := writeRow(f, sheet, i+2, delta.Category, delta.Current, delta.Prior, deltaCell(delta.Percent))
		if err != nil {
			return err
		}
	}

	return nil
}

func writeVehicles(f *excelize.File, sheet string, current, prior []dataset.Record, currentYear, priorYear int) error {
	header := []any{
		"Vehicle group",
		fmt.Sprintf("Collisions %d", currentYear),
		fmt.Sprintf("Collisions %d", priorYear),
	}

	if err := writeRow(f, sheet, 1, header...); err != nil {
		return err
	}

	currentGroups := aggregate.VehicleGroupCollisions(current)
	priorGroups := aggregate.VehicleGroupCollisions(prior)

	for i, g := range currentGroups {
		if err := writeRow(f, sheet, i+2, g.Label, g.Count, priorGroups[i].Count); err != nil {
			return err
		}
	}

	return nil
}

func writeMonthly(f *excelize.File, sheet string, current, prior []dataset.Record, currentYear, priorYear int) error {
	if err := writeRow(f, sheet, 1, "Month", strconv.Itoa(currentYear), strconv.Itoa(priorYear)); err != nil {
		return err
	}

	currentMonths := aggregate.MonthlyCollisions(current)
	priorMonths := aggregate.MonthlyCollisions(prior)

	for i, name := range aggregate.MonthNames {
		if err := writeRow(f, sheet, i+2, name, currentMonths[i], priorMonths[i]); err != nil {
			return err
		}
	}

	return nil
}

func writeInsights(f *excelize.File, sheet string, current, prior []dataset.Record) error {
	ins := aggregate.ComputeInsights(current, prior)

	rows := [][]any{
		{"Metric", "Value"},
		{"Casualties, current year", ins.CurrentTotal},
		{"Casualties, prior year", ins.PriorTotal},
		{"Year-on-year change %", deltaCell(ins.TotalYoY)},
		{"Male share of fatal casualties %", deltaCell(ins.FatalMaleShare)},
		{"Most involved vehicle group", ins.TopVehicleGroup},
		{"Casualties in that group", ins.TopVehicleCount},
		{"Fatal share of that group %", deltaCell(ins.TopVehicleFatalShare)},
	}

	if ins.BiggestMover != nil {
		rows = append(rows,
			[]any{"Biggest severity mover", ins.BiggestMover.Category},
			[]any{"Biggest mover change %", deltaCell(ins.BiggestMover.Percent)},
		)
	}

	for i, row := range rows {
		if err := writeRow(f, sheet, i+1, row...); err != nil {
			return err
		}
	}

	return nil
}

// writeRow writes values left to right starting at column A of row.
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell (%d,%d): %w", col+1, row, err)
		}

		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("export: writing %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}

// deltaCell renders a nilable percentage as a cell value.
func deltaCell(pct *float64) any {
	if pct == nil {
		return notAvailable
	}

	return *pct
}
