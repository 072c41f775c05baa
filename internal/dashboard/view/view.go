// Package view computes the shared filtered record sequence every
// aggregate consumes. The view is recomputed in full on each call;
// cross-filter semantics depend on every chart reading the same pass,
// so no per-dimension memoization happens here.
package view

import (
	"strconv"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Filtered returns the subsequence of records for the given year that
// passes every active dimension predicate, preserving load order. An
// empty severity set empties the view before any other dimension is
// consulted.
func Filtered(records []dataset.Record, st *state.State, year int) []dataset.Record {
	if st.SeverityExcluded() {
		return nil
	}

	var out []dataset.Record

	for i := range records {
		if records[i].Year != year {
			continue
		}

		if !passes(&records[i], st) {
			continue
		}

		out = append(out, records[i])
	}

	return out
}

func passes(rec *dataset.Record, st *state.State) bool {
	if !st.Accepts(state.DimSeverity, strconv.Itoa(rec.Severity)) {
		return false
	}

	if !st.Accepts(state.DimSpeed, strconv.Itoa(rec.SpeedLimit)) {
		return false
	}

	if !st.Accepts(state.DimAgeBand, taxonomy.AgeBand(rec.CasualtyAge)) {
		return false
	}

	if !st.Accepts(state.DimClass, strconv.Itoa(rec.CasualtyClass)) {
		return false
	}

	if !st.Accepts(state.DimGender, strconv.Itoa(rec.Sex)) {
		return false
	}

	if !st.Accepts(state.DimVehicleGroup, taxonomy.VehicleGroup(rec.VehicleType)) {
		return false
	}

	if !st.Accepts(state.DimEngineBand, taxonomy.EngineBand(rec.EngineCapacityCC)) {
		return false
	}

	if !st.Accepts(state.DimVehicleAgeBand, taxonomy.VehicleAgeBand(rec.VehicleAge)) {
		return false
	}

	return inDateRange(rec, st)
}

// inDateRange applies the date bounds. Records without a parseable
// date pass, matching the source behavior of only bounding dated rows.
func inDateRange(rec *dataset.Record, st *state.State) bool {
	start, end := st.DateRange()

	if rec.Date.IsZero() {
		return true
	}

	if !start.IsZero() && rec.Date.Before(start) {
		return false
	}

	if !end.IsZero() && rec.Date.After(end) {
		return false
	}

	return true
}
