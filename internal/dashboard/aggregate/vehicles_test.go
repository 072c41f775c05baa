package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
)

func TestImpactCountsDistinctPerCollision(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", ImpactCode: 1},
		{CollisionIndex: "A", ImpactCode: 1}, // Same collision, same bucket: once.
		{CollisionIndex: "A", ImpactCode: 2}, // Same collision, new bucket: counts again.
		{CollisionIndex: "B", ImpactCode: 9}, // Out of range: unknown.
	}

	counts := aggregate.ImpactCounts(recs)
	require.Len(t, counts, 3)

	assert.Equal(t, aggregate.Labeled{Label: "Front", Count: 1}, counts[0])
	assert.Equal(t, aggregate.Labeled{Label: "Back", Count: 1}, counts[1])
	assert.Equal(t, aggregate.Labeled{Label: "Unknown", Count: 1}, counts[2])
}

func TestWeatherCountsUnknownLast(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", WeatherCode: 2},
		{CollisionIndex: "B", WeatherCode: 2},
		{CollisionIndex: "C", WeatherCode: 1},
		{CollisionIndex: "D", WeatherCode: 9},
		{CollisionIndex: "E", WeatherCode: 9},
		{CollisionIndex: "F", WeatherCode: 9},
	}

	counts := aggregate.WeatherCounts(recs)
	require.Len(t, counts, 3)

	// Unknown has the highest count but still sorts last.
	assert.Equal(t, "Raining", counts[0].Label)
	assert.Equal(t, "Fine", counts[1].Label)
	assert.Equal(t, "Unknown", counts[2].Label)
	assert.Equal(t, 3, counts[2].Count)
}

func TestDriverAgeCountsScaleOrder(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", DriverAge: 17},
		{CollisionIndex: "A", DriverAge: 40}, // Same collision, second group.
		{CollisionIndex: "B", DriverAge: 40},
		{CollisionIndex: "C", DriverAge: -1},
	}

	counts := aggregate.DriverAgeCounts(recs)
	require.Len(t, counts, 3)

	assert.Equal(t, aggregate.Labeled{Label: taxonomy.DriverAgeUnder18, Count: 1}, counts[0])
	assert.Equal(t, aggregate.Labeled{Label: taxonomy.DriverAge25to55, Count: 2}, counts[1])
	assert.Equal(t, aggregate.Labeled{Label: taxonomy.DriverAgeUnknown, Count: 1}, counts[2])
}

func TestDistanceCountsKeepsAllBands(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", DistanceBand: 1},
		{CollisionIndex: "B", DistanceBand: 1},
		{CollisionIndex: "B", DistanceBand: 1}, // Second casualty of B.
		{CollisionIndex: "C", DistanceBand: 5},
		{CollisionIndex: "D", DistanceBand: 0}, // Outside the banding: ignored.
	}

	counts := aggregate.DistanceCounts(recs)
	require.Len(t, counts, 5)

	assert.Equal(t, aggregate.Labeled{Label: "0–5 km", Count: 2}, counts[0])
	assert.Equal(t, aggregate.Labeled{Label: "5–10 km", Count: 0}, counts[1])
	assert.Equal(t, aggregate.Labeled{Label: "100+ km", Count: 1}, counts[4])
}

func TestVehicleGroupCollisions(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CollisionIndex: "A", VehicleType: 9},
		{CollisionIndex: "A", VehicleType: 9},
		{CollisionIndex: "B", VehicleType: 3},
		{CollisionIndex: "C", VehicleType: 17}, // Special: coarse bucket.
	}

	counts := aggregate.VehicleGroupCollisions(recs)
	require.Len(t, counts, len(taxonomy.CoarseVehicleGroups))

	assert.Equal(t, aggregate.Labeled{Label: taxonomy.GroupCarsTaxis, Count: 1}, counts[0])
	assert.Equal(t, aggregate.Labeled{Label: taxonomy.GroupMotorcycles, Count: 1}, counts[1])
	assert.Equal(t, aggregate.Labeled{Label: taxonomy.GroupBuses, Count: 0}, counts[2])
	assert.Equal(t, aggregate.Labeled{Label: taxonomy.GroupActiveSpecialOther, Count: 1}, counts[4])
}

func TestClassSeverityRows(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CasualtyClass: 1, Severity: 1},
		{CasualtyClass: 1, Severity: 3},
		{CasualtyClass: 3, Severity: 2},
		{CasualtyClass: 7, Severity: 2},  // Unmapped class folds into Unknown.
		{CasualtyClass: 2, Severity: -1}, // Unknown severity stays out of the stack.
	}

	rows := aggregate.ClassSeverityRows(recs)
	require.Len(t, rows, 4)

	assert.Equal(t, "Driver", rows[0].Class)
	assert.Equal(t, 1, rows[0].Fatal)
	assert.Equal(t, 1, rows[0].Slight)
	assert.Equal(t, 2, rows[0].Total())

	assert.Equal(t, "Passenger", rows[1].Class)
	assert.Equal(t, 0, rows[1].Total())

	assert.Equal(t, "Pedestrian", rows[2].Class)
	assert.Equal(t, 1, rows[2].Serious)

	assert.Equal(t, "Unknown", rows[3].Class)
	assert.Equal(t, 1, rows[3].Serious)
}

func TestAgeClassCellsKSIShare(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CasualtyClass: 1, CasualtyAge: 30, Severity: 1},
		{CasualtyClass: 1, CasualtyAge: 30, Severity: 3},
		{CasualtyClass: 1, CasualtyAge: 30, Severity: 2},
		{CasualtyClass: 1, CasualtyAge: 30, Severity: 3},
	}

	cells := aggregate.AgeClassCells(recs)
	require.Len(t, cells, 4*5)

	var target *aggregate.HeatCell

	for i := range cells {
		if cells[i].Class == "Driver" && cells[i].AgeBand == taxonomy.AgeBand25to59 {
			target = &cells[i]

			break
		}
	}

	require.NotNil(t, target)
	assert.Equal(t, 4, target.Count)
	assert.Equal(t, 2, target.KSI)
	assert.InDelta(t, 0.5, target.KSIShare, 1e-9)
}

func TestTimeCellsFullGrid(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{DayOfWeek: 2, Hour: 8},  // Monday 08.
		{DayOfWeek: 2, Hour: 8},  // Monday 08 again.
		{DayOfWeek: 1, Hour: 23}, // Sunday 23.
		{DayOfWeek: 0, Hour: 8},  // Unknown day dropped.
		{DayOfWeek: 2, Hour: -1}, // Unknown hour dropped.
	}

	cells := aggregate.TimeCells(recs)
	require.Len(t, cells, 7*aggregate.HoursPerDay)

	// Monday row comes first.
	assert.Equal(t, "Mon", cells[0].Day)

	byKey := make(map[string]int)
	for _, c := range cells {
		if c.Count > 0 {
			byKey[c.Day] += c.Count
		}
	}

	assert.Equal(t, map[string]int{"Mon": 2, "Sun": 1}, byKey)
}

func TestTopCasualtyTypes(t *testing.T) {
	t.Parallel()

	recs := []dataset.Record{
		{CasualtyType: 9},
		{CasualtyType: 9},
		{CasualtyType: 0},
		{CasualtyType: 1},
		{CasualtyType: 1},
		{CasualtyType: 23},
	}

	top := aggregate.TopCasualtyTypes(recs, 2)
	require.Len(t, top, 2)

	assert.Equal(t, aggregate.Ranked{Category: "Car occupant", Count: 2}, top[0])

	// Pedal cycle ties Car occupant's runner-up spot by encounter order.
	assert.Equal(t, aggregate.Ranked{Category: "Pedal cycle", Count: 2}, top[1])
}
