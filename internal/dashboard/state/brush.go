package state

import (
	"slices"
	"strconv"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// BrushKind identifies the dimension a brush selects on.
type BrushKind string

// Brush kinds. BrushNone means no brush is active.
const (
	BrushNone     BrushKind = "NONE"
	BrushSeverity BrushKind = "SEVERITY"
	BrushVehicle  BrushKind = "VEHICLE"
)

// Brush is the cross-chart emphasis selection. Invariant: Kind is
// BrushNone exactly when Values is empty. The zero value is an
// inactive brush.
type Brush struct {
	Kind   BrushKind
	Values map[string]struct{}
}

// Active reports whether a brush selection exists.
func (b Brush) Active() bool {
	return b.Kind != "" && b.Kind != BrushNone && len(b.Values) > 0
}

// Has reports membership of a canonical value in the selection.
func (b Brush) Has(value string) bool {
	_, ok := b.Values[value]

	return ok
}

// SortedValues returns the selected values in sorted order.
func (b Brush) SortedValues() []string {
	values := make([]string, 0, len(b.Values))
	for v := range b.Values {
		values = append(values, v)
	}

	slices.Sort(values)

	return values
}

// ToggleBrush runs the brush state machine transition.
//
// Switching kind replaces the brush wholesale with a single-value
// selection. Within the same kind, a plain toggle on the only selected
// value clears the brush and a plain toggle on anything else collapses
// the selection to that value; a multi toggle flips membership and
// clears the brush when the set empties.
func (s *State) ToggleBrush(kind BrushKind, value string, multi bool) {
	defer s.notify()

	if s.brush.Kind != kind || !s.brush.Active() {
		s.brush = Brush{Kind: kind, Values: map[string]struct{}{value: {}}}

		return
	}

	if !multi {
		if len(s.brush.Values) == 1 && s.brush.Has(value) {
			s.brush = Brush{}

			return
		}

		s.brush.Values = map[string]struct{}{value: {}}

		return
	}

	if s.brush.Has(value) {
		delete(s.brush.Values, value)
	} else {
		s.brush.Values[value] = struct{}{}
	}

	if len(s.brush.Values) == 0 {
		s.brush = Brush{}
	}
}

// ClearBrush resets the brush to inactive.
func (s *State) ClearBrush() {
	s.brush = Brush{}
	s.notify()
}

// Brush returns the current brush selection. Callers must not mutate
// the returned value set.
func (s *State) Brush() Brush {
	return s.brush
}

// HasBrush reports whether a brush selection is active.
func (s *State) HasBrush() bool {
	return s.brush.Active()
}

// RecordBrushed reports whether a record is emphasized under the
// current brush. With no brush active everything passes; brushing
// never removes records from aggregation.
func (s *State) RecordBrushed(rec dataset.Record) bool {
	if !s.brush.Active() {
		return true
	}

	switch s.brush.Kind {
	case BrushSeverity:
		return s.brush.Has(strconv.Itoa(rec.Severity))
	case BrushVehicle:
		return s.brush.Has(taxonomy.VehicleGroup(rec.VehicleType))
	case BrushNone:
		return true
	default:
		return true
	}
}
