// Package state owns the shared filter and brush state behind every
// dashboard. All mutation goes through the operations defined here;
// each one fires the registered change observers so the render layer
// can recompute everything from the single filtered view.
package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Dimension names a filterable dimension of the record set.
type Dimension string

// Filterable dimensions.
const (
	DimSeverity       Dimension = "severity"
	DimSpeed          Dimension = "speed"
	DimAgeBand        Dimension = "age_band"
	DimClass          Dimension = "class"
	DimGender         Dimension = "gender"
	DimVehicleGroup   Dimension = "vehicle_group"
	DimEngineBand     Dimension = "engine_band"
	DimVehicleAgeBand Dimension = "vehicle_age_band"
)

// ErrYearUnavailable is returned when a year pair names a year absent
// from the loaded dataset.
var ErrYearUnavailable = errors.New("state: year not present in dataset")

// ErrSameYearPair is returned when current and prior are equal while
// more than one year is available.
var ErrSameYearPair = errors.New("state: current and prior year must differ")

// State is the owned filter + brush state. A dimension with no entry
// in dims passes every value; an entry holds the accepted-value set,
// which may be empty (exclude everything on that dimension). State is
// not safe for concurrent use: mutations and reads happen on the
// single event goroutine, mirroring the synchronous recompute model.
type State struct {
	years map[int]struct{}

	currentYear int
	priorYear   int

	dims      map[Dimension]map[string]struct{}
	dateStart time.Time
	dateEnd   time.Time

	brush Brush

	observers []func()
}

// New creates the state for a dataset with the given available years,
// defaulting the comparison pair to the two most recent years and the
// severity dimension to the three known severities.
func New(years []int) *State {
	s := &State{
		years: make(map[int]struct{}, len(years)),
		dims:  make(map[Dimension]map[string]struct{}),
	}

	maxYear := 0
	secondYear := 0

	for _, y := range years {
		s.years[y] = struct{}{}

		switch {
		case y > maxYear:
			secondYear = maxYear
			maxYear = y
		case y > secondYear:
			secondYear = y
		}
	}

	s.currentYear = maxYear
	s.priorYear = secondYear

	if secondYear == 0 {
		s.priorYear = maxYear
	}

	s.applyDefaultDimensions()

	return s
}

// applyDefaultDimensions restores the initial filter selections. Only
// severity starts with an explicit set: the Unknown severity is out of
// the default view. Every other dimension starts as a wildcard.
func (s *State) applyDefaultDimensions() {
	s.dims = map[Dimension]map[string]struct{}{
		DimSeverity: {
			severityValue(taxonomy.SeverityFatal):   {},
			severityValue(taxonomy.SeveritySerious): {},
			severityValue(taxonomy.SeveritySlight):  {},
		},
	}
}

// OnChange registers an observer invoked after every mutation.
func (s *State) OnChange(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *State) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// SetDimension replaces the accepted-value set for a dimension. An
// empty slice excludes everything on that dimension.
func (s *State) SetDimension(dim Dimension, values []string) {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	s.dims[dim] = set
	s.notify()
}

// ClearDimension removes the dimension predicate entirely, so every
// value passes again.
func (s *State) ClearDimension(dim Dimension) {
	delete(s.dims, dim)
	s.notify()
}

// Accepts reports whether a value passes the dimension predicate.
// Inactive dimensions pass everything; an active empty set passes
// nothing.
func (s *State) Accepts(dim Dimension, value string) bool {
	set, ok := s.dims[dim]
	if !ok {
		return true
	}

	_, member := set[value]

	return member
}

// DimensionActive reports whether a dimension has an explicit set.
func (s *State) DimensionActive(dim Dimension) bool {
	_, ok := s.dims[dim]

	return ok
}

// DimensionSize returns the size of an active dimension's set, or -1
// for a wildcard dimension.
func (s *State) DimensionSize(dim Dimension) int {
	set, ok := s.dims[dim]
	if !ok {
		return -1
	}

	return len(set)
}

// SeverityExcluded reports the explicit short-circuit: the severity
// set is active and empty, so the filtered view is empty regardless
// of every other dimension.
func (s *State) SeverityExcluded() bool {
	set, ok := s.dims[DimSeverity]

	return ok && len(set) == 0
}

// SetDateRange bounds the view by collision date. Zero times leave
// the corresponding side unbounded.
func (s *State) SetDateRange(start, end time.Time) {
	s.dateStart = start
	s.dateEnd = end
	s.notify()
}

// DateRange returns the active date bounds.
func (s *State) DateRange() (start, end time.Time) {
	return s.dateStart, s.dateEnd
}

// SetYearPair selects the comparison period. Both years must exist in
// the dataset, and they must differ whenever more than one year is
// available.
func (s *State) SetYearPair(current, prior int) error {
	if _, ok := s.years[current]; !ok {
		return fmt.Errorf("%w: %d", ErrYearUnavailable, current)
	}

	if _, ok := s.years[prior]; !ok {
		return fmt.Errorf("%w: %d", ErrYearUnavailable, prior)
	}

	if current == prior && len(s.years) > 1 {
		return fmt.Errorf("%w: %d", ErrSameYearPair, current)
	}

	s.currentYear = current
	s.priorYear = prior
	s.notify()

	return nil
}

// YearPair returns the active comparison period.
func (s *State) YearPair() (current, prior int) {
	return s.currentYear, s.priorYear
}

// Reset restores default filter selections and clears the brush and
// date range. The year pair is kept.
func (s *State) Reset() {
	s.applyDefaultDimensions()
	s.dateStart = time.Time{}
	s.dateEnd = time.Time{}
	s.brush = Brush{}
	s.notify()
}

// Summary renders the human-readable filter/brush label shown in the
// dashboard header.
func (s *State) Summary() string {
	parts := []string{
		fmt.Sprintf("Current: %d", s.currentYear),
		fmt.Sprintf("Prior: %d", s.priorYear),
		"Severity: " + s.severitySummary(),
		"Speed: " + s.setSummary(DimSpeed, "speeds"),
		"Age: " + s.setSummary(DimAgeBand, "bands"),
		"Class: " + s.setSummary(DimClass, "classes"),
		"Gender: " + s.setSummary(DimGender, "genders"),
	}

	if s.DimensionActive(DimVehicleGroup) {
		parts = append(parts, "Vehicle: "+s.setSummary(DimVehicleGroup, "groups"))
	}

	if s.DimensionActive(DimEngineBand) {
		parts = append(parts, "Engine: "+s.setSummary(DimEngineBand, "bands"))
	}

	if s.DimensionActive(DimVehicleAgeBand) {
		parts = append(parts, "Vehicle age: "+s.setSummary(DimVehicleAgeBand, "bands"))
	}

	if !s.dateStart.IsZero() || !s.dateEnd.IsZero() {
		parts = append(parts, "Dates: "+dateRangeSummary(s.dateStart, s.dateEnd))
	}

	parts = append(parts, s.brushSummary())

	return strings.Join(parts, " | ")
}

func (s *State) severitySummary() string {
	set, ok := s.dims[DimSeverity]
	if !ok {
		return "ALL"
	}

	if len(set) == 0 {
		return "none"
	}

	labels := make([]string, 0, len(set))

	for _, sev := range taxonomy.SeverityPriority {
		if _, member := set[severityValue(sev)]; member {
			labels = append(labels, sev.Label())
		}
	}

	return strings.Join(labels, ", ")
}

func (s *State) setSummary(dim Dimension, noun string) string {
	set, ok := s.dims[dim]
	if !ok {
		return "ALL"
	}

	if len(set) == 0 {
		return "none"
	}

	return fmt.Sprintf("%d %s", len(set), noun)
}

func (s *State) brushSummary() string {
	if !s.brush.Active() {
		return "Brush: none"
	}

	values := s.brush.SortedValues()

	if s.brush.Kind == BrushSeverity {
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = severityLabelFromValue(v)
		}

		return "Brush: Severity = " + strings.Join(labels, ", ")
	}

	return "Brush: Vehicle = " + strings.Join(values, ", ")
}

func dateRangeSummary(start, end time.Time) string {
	const layout = "2006-01-02"

	from := "…"
	if !start.IsZero() {
		from = start.Format(layout)
	}

	to := "…"
	if !end.IsZero() {
		to = end.Format(layout)
	}

	return from + " to " + to
}

// severityValue is the canonical string form of a severity code used
// for dimension sets and brush values.
func severityValue(sev taxonomy.Severity) string {
	return strconv.Itoa(int(sev))
}

func severityLabelFromValue(v string) string {
	code, err := strconv.Atoi(v)
	if err != nil {
		return v
	}

	return taxonomy.ParseSeverity(code).Label()
}

// SeverityValue exposes the canonical severity string for callers
// assembling dimension sets or brush values.
func SeverityValue(sev taxonomy.Severity) string {
	return severityValue(sev)
}
