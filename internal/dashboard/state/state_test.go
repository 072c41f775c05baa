package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
)

var testYears = []int{2022, 2023}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	current, prior := st.YearPair()
	assert.Equal(t, 2023, current)
	assert.Equal(t, 2022, prior)

	// Default severity selection excludes Unknown.
	assert.True(t, st.Accepts(state.DimSeverity, "1"))
	assert.True(t, st.Accepts(state.DimSeverity, "3"))
	assert.False(t, st.Accepts(state.DimSeverity, "-1"))

	// Every other dimension starts as a wildcard.
	assert.True(t, st.Accepts(state.DimAgeBand, "60+"))
	assert.True(t, st.Accepts(state.DimVehicleGroup, "Cars & Taxis"))
	assert.False(t, st.DimensionActive(state.DimGender))
}

func TestNewSingleYear(t *testing.T) {
	t.Parallel()

	st := state.New([]int{2024})

	current, prior := st.YearPair()
	assert.Equal(t, 2024, current)
	assert.Equal(t, 2024, prior)
}

func TestSetDimensionEmptySetExcludesAll(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	st.SetDimension(state.DimAgeBand, nil)

	assert.True(t, st.DimensionActive(state.DimAgeBand))
	assert.Equal(t, 0, st.DimensionSize(state.DimAgeBand))
	assert.False(t, st.Accepts(state.DimAgeBand, "0–15"))

	st.ClearDimension(state.DimAgeBand)
	assert.True(t, st.Accepts(state.DimAgeBand, "0–15"))
	assert.Equal(t, -1, st.DimensionSize(state.DimAgeBand))
}

func TestSeverityExcludedShortCircuit(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)
	assert.False(t, st.SeverityExcluded())

	st.SetDimension(state.DimSeverity, []string{})
	assert.True(t, st.SeverityExcluded())

	st.SetDimension(state.DimSeverity, []string{"1"})
	assert.False(t, st.SeverityExcluded())
}

func TestSetYearPairValidation(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	require.NoError(t, st.SetYearPair(2022, 2023))

	err := st.SetYearPair(2021, 2022)
	require.ErrorIs(t, err, state.ErrYearUnavailable)

	err = st.SetYearPair(2023, 2023)
	require.ErrorIs(t, err, state.ErrSameYearPair)

	// With a single year loaded the pair may collapse.
	single := state.New([]int{2024})
	require.NoError(t, single.SetYearPair(2024, 2024))
}

func TestObserverFiresOnEveryMutation(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	fired := 0
	st.OnChange(func() { fired++ })

	st.SetDimension(state.DimGender, []string{"1"})
	st.ClearDimension(state.DimGender)
	st.SetDateRange(time.Time{}, time.Time{})
	st.ToggleBrush(state.BrushSeverity, "1", false)
	st.ClearBrush()
	st.Reset()
	require.NoError(t, st.SetYearPair(2022, 2023))

	assert.Equal(t, 7, fired)
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	st.SetDimension(state.DimSeverity, []string{"1"})
	st.SetDimension(state.DimGender, []string{"2"})
	st.SetDateRange(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	st.ToggleBrush(state.BrushVehicle, "Motorcycles", false)
	require.NoError(t, st.SetYearPair(2022, 2023))

	st.Reset()

	assert.True(t, st.Accepts(state.DimSeverity, "2"))
	assert.False(t, st.DimensionActive(state.DimGender))
	assert.False(t, st.HasBrush())

	start, end := st.DateRange()
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())

	// Year pair survives a reset.
	current, prior := st.YearPair()
	assert.Equal(t, 2022, current)
	assert.Equal(t, 2023, prior)
}

func TestToggleBrushStateMachine(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	// NONE -> single selection.
	st.ToggleBrush(state.BrushSeverity, "1", false)
	require.True(t, st.HasBrush())
	assert.Equal(t, state.BrushSeverity, st.Brush().Kind)
	assert.True(t, st.Brush().Has("1"))

	// Same kind, plain toggle on another value collapses to it.
	st.ToggleBrush(state.BrushSeverity, "2", false)
	assert.Equal(t, []string{"2"}, st.Brush().SortedValues())

	// Multi toggle grows the set.
	st.ToggleBrush(state.BrushSeverity, "1", true)
	assert.Equal(t, []string{"1", "2"}, st.Brush().SortedValues())

	// Switching kind resets to a single value regardless of multi.
	st.ToggleBrush(state.BrushVehicle, "Cars & Taxis", true)
	assert.Equal(t, state.BrushVehicle, st.Brush().Kind)
	assert.Equal(t, []string{"Cars & Taxis"}, st.Brush().SortedValues())

	// Multi toggle removing the last value clears the brush.
	st.ToggleBrush(state.BrushVehicle, "Cars & Taxis", true)
	assert.False(t, st.HasBrush())
}

func TestToggleBrushInvolution(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)
	require.False(t, st.HasBrush())

	st.ToggleBrush(state.BrushSeverity, "1", false)
	st.ToggleBrush(state.BrushSeverity, "1", false)

	assert.False(t, st.HasBrush())
	assert.Equal(t, "Brush: none", lastSegment(st.Summary()))
}

func TestRecordBrushed(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	fatal := dataset.Record{Severity: 1, VehicleType: 9}
	serious := dataset.Record{Severity: 2, VehicleType: 3}

	// No brush: everything passes.
	assert.True(t, st.RecordBrushed(fatal))
	assert.True(t, st.RecordBrushed(serious))

	st.ToggleBrush(state.BrushSeverity, "1", false)
	assert.True(t, st.RecordBrushed(fatal))
	assert.False(t, st.RecordBrushed(serious))

	st.ClearBrush()
	assert.True(t, st.RecordBrushed(fatal))
	assert.True(t, st.RecordBrushed(serious))

	// Vehicle brush matches on the coarse group.
	st.ToggleBrush(state.BrushVehicle, "Motorcycles", false)
	assert.True(t, st.RecordBrushed(serious))
	assert.False(t, st.RecordBrushed(fatal))
}

func TestSummary(t *testing.T) {
	t.Parallel()

	st := state.New(testYears)

	summary := st.Summary()
	assert.Contains(t, summary, "Current: 2023")
	assert.Contains(t, summary, "Prior: 2022")
	assert.Contains(t, summary, "Severity: Fatal, Serious, Slight")
	assert.Contains(t, summary, "Speed: ALL")
	assert.Contains(t, summary, "Age: ALL")
	assert.Contains(t, summary, "Brush: none")

	st.SetDimension(state.DimSeverity, nil)
	st.SetDimension(state.DimAgeBand, []string{"0–15", "16–24"})
	st.ToggleBrush(state.BrushVehicle, "Vans & Goods", false)

	summary = st.Summary()
	assert.Contains(t, summary, "Severity: none")
	assert.Contains(t, summary, "Age: 2 bands")
	assert.Contains(t, summary, "Brush: Vehicle = Vans & Goods")

	st.ToggleBrush(state.BrushSeverity, "1", false)
	assert.Contains(t, st.Summary(), "Brush: Severity = Fatal")
}

func lastSegment(s string) string {
	parts := []byte(s)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == '|' {
			return string(parts[i+2:])
		}
	}

	return s
}
