package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/view"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

func severityRecords(year int, fatal, serious, slight int) []dataset.Record {
	recs := make([]dataset.Record, 0, fatal+serious+slight)

	add := func(n, severity int) {
		for range n {
			recs = append(recs, dataset.Record{
				CollisionIndex: "X",
				Year:           year,
				Severity:       severity,
			})
		}
	}

	add(fatal, 1)
	add(serious, 2)
	add(slight, 3)

	return recs
}

// End-to-end: ten 2023 casualties (6 Fatal, 3 Serious, 1 Slight)
// against ten 2022 ones (5 Fatal, 5 Serious, 0 Slight).
func TestSeverityPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	records := append(severityRecords(2023, 6, 3, 1), severityRecords(2022, 5, 5, 0)...)

	st := state.New([]int{2022, 2023})

	current := view.Filtered(records, st, 2023)
	prior := view.Filtered(records, st, 2022)

	require.Len(t, current, 10)
	require.Len(t, prior, 10)

	counts := aggregate.SeverityCounts(current)
	assert.Equal(t, map[string]int{"Fatal": 6, "Serious": 3, "Slight": 1}, counts)

	ins := aggregate.ComputeInsights(current, prior)

	require.Len(t, ins.BySeverity, 3)

	fatal := ins.BySeverity[0]
	require.NotNil(t, fatal.Percent)
	assert.InDelta(t, 20.0, *fatal.Percent, 1e-9)

	// Slight went 0 -> 1: explicit n/a.
	assert.Nil(t, ins.BySeverity[2].Percent)
}

func TestCountByAndDistinctCollisions(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", Severity: 1},
		{CollisionIndex: "A", Severity: 1},
		{CollisionIndex: "B", Severity: 1},
		{CollisionIndex: "C", Severity: 2},
	}

	rows := aggregate.CountBy(recs, aggregate.SeverityCode)
	assert.Equal(t, map[string]int{"1": 3, "2": 1}, rows)

	distinct := aggregate.DistinctCollisionsBy(recs, aggregate.SeverityCode)
	assert.Equal(t, map[string]int{"1": 2, "2": 1}, distinct)

	assert.Equal(t, 3, aggregate.DistinctCollisions(recs))
	assert.Empty(t, aggregate.CountBy(nil, aggregate.SeverityCode))
}

func TestCountsInOrder(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"Fatal": 2, "Slight": 5}
	assert.Equal(t, []int{2, 0, 5}, aggregate.CountsInOrder(counts, []string{"Fatal", "Serious", "Slight"}))
}

func TestMonthlyCollisionsDedupes(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", Month: 1},
		{CollisionIndex: "A", Month: 1}, // Second casualty, same collision.
		{CollisionIndex: "B", Month: 1},
		{CollisionIndex: "C", Month: 12},
		{CollisionIndex: "D", Month: -1}, // Unknown month drops out.
	}

	series := aggregate.MonthlyCollisions(recs)
	require.Len(t, series, aggregate.MonthsPerYear)
	assert.Equal(t, 2, series[0])
	assert.Equal(t, 1, series[11])
	assert.Equal(t, 0, series[5])
}

func TestTopNStableTies(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"a": 3, "b": 5, "c": 3, "d": 1}
	order := []string{"a", "b", "c", "d"}

	top := aggregate.TopN(counts, order, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].Category)

	// a and c tie at 3; a keeps its enumeration position.
	assert.Equal(t, "a", top[1].Category)
	assert.Equal(t, "c", top[2].Category)

	everything := aggregate.TopN(counts, order, 0)
	assert.Len(t, everything, 4)
}

func TestDominantSeverityTieBreak(t *testing.T) {
	t.Parallel()

	// Fatal and Serious tied at the maximum: priority order wins.
	dom := aggregate.DominantSeverity(map[taxonomy.Severity]int{
		taxonomy.SeverityFatal:   2,
		taxonomy.SeveritySerious: 2,
	})
	assert.Equal(t, taxonomy.SeverityFatal, dom)

	dom = aggregate.DominantSeverity(map[taxonomy.Severity]int{
		taxonomy.SeveritySerious: 1,
		taxonomy.SeveritySlight:  4,
	})
	assert.Equal(t, taxonomy.SeveritySlight, dom)
}

func TestGridBins(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", Severity: 1, Longitude: -0.1, Latitude: 51.5, HasCoords: true},
		{CollisionIndex: "B", Severity: 2, Longitude: -0.1, Latitude: 51.5, HasCoords: true},
		{CollisionIndex: "C", Severity: 2, Longitude: -3.2, Latitude: 55.9, HasCoords: true},
		{CollisionIndex: "D", Severity: 1}, // No coordinates: spatially omitted.
	}

	bins := aggregate.GridBins(recs, aggregate.DefaultCellSize)
	require.Len(t, bins, 2)

	total := 0
	for _, bin := range bins {
		total += bin.Total
	}

	assert.Equal(t, 3, total)

	// The co-located pair ties Fatal/Serious at 1 each: Fatal wins.
	for _, bin := range bins {
		if bin.Total == 2 {
			assert.Equal(t, taxonomy.SeverityFatal, bin.Dominant)
		}
	}
}

func TestGridBinsNoCoordinates(t *testing.T) {
	t.Parallel()

	assert.Empty(t, aggregate.GridBins([]dataset.Record{{CollisionIndex: "A"}}, 7))
	assert.Empty(t, aggregate.GridBins(nil, 7))
}

func TestInsightsEmptyViews(t *testing.T) {
	t.Parallel()

	ins := aggregate.ComputeInsights(nil, nil)

	assert.Equal(t, 0, ins.CurrentTotal)
	require.NotNil(t, ins.TotalYoY)
	assert.InDelta(t, 0.0, *ins.TotalYoY, 1e-9)
	assert.Nil(t, ins.FatalMaleShare)
	assert.Empty(t, ins.TopVehicleGroup)
	assert.Nil(t, ins.TopVehicleFatalShare)
}

func TestInsightsFatalMaleShareKnownOnly(t *testing.T) {
	t.Parallel()

	current := []dataset.Record{
		{Severity: 1, Sex: 1, VehicleType: 9},
		{Severity: 1, Sex: 1, VehicleType: 9},
		{Severity: 1, Sex: 2, VehicleType: 9},
		{Severity: 1, Sex: -1, VehicleType: 9}, // Unknown gender excluded from the denominator.
		{Severity: 3, Sex: 2, VehicleType: 3},
	}

	ins := aggregate.ComputeInsights(current, current)

	require.NotNil(t, ins.FatalMaleShare)
	assert.InDelta(t, 200.0/3.0, *ins.FatalMaleShare, 1e-6)

	assert.Equal(t, taxonomy.GroupCarsTaxis, ins.TopVehicleGroup)
	assert.Equal(t, 4, ins.TopVehicleCount)

	require.NotNil(t, ins.TopVehicleFatalShare)
	assert.InDelta(t, 100.0, *ins.TopVehicleFatalShare, 1e-9)
}
