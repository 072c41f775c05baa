package dataset_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
)

const sampleCSV = `collision_index,collision_year,date,month,speed_limit,collision_severity,longitude,latitude,vehicle_type,casualty_class,age_of_casualty,sex_of_casualty,engine_capacity_cc,age_of_vehicle,age_of_driver,weather_conditions,first_point_of_impact,casualty_distance_banding,casualty_type,day_of_week,time
C001,2023,2023-03-14,3,30,1,-0.1276,51.5072,9,1,34,1,1598,4,34,1,1,2,9,3,08:15
C002,2023,14/06/2023,6,60,2,,,3,2,-1,2,,,,9,9,,4,5,
C003,2022,2022-11-02,11,30,3,-1.2577,51.7520,1,3,12,7,bogus,1.5,17,2,0,1,0,1,23:45
`

func TestReadCoercesTypedRecords(t *testing.T) {
	t.Parallel()

	store, err := dataset.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Equal(t, 3, store.Len())
	assert.True(t, store.Loaded())
	assert.Equal(t, []int{2022, 2023}, store.Years())

	recs := store.Records()

	first := recs[0]
	assert.Equal(t, "C001", first.CollisionIndex)
	assert.Equal(t, 2023, first.Year)
	assert.Equal(t, 3, first.Month)
	assert.Equal(t, 1, first.Severity)
	assert.Equal(t, 30, first.SpeedLimit)
	assert.True(t, first.HasCoords)
	assert.InDelta(t, -0.1276, first.Longitude, 1e-9)
	assert.Equal(t, 34, first.CasualtyAge)
	assert.Equal(t, 1, first.Sex)
	assert.InDelta(t, 1598, first.EngineCapacityCC, 1e-9)
	assert.Equal(t, 8, first.Hour)
	assert.Equal(t, 3, first.DayOfWeek)
}

func TestReadUnknownSentinels(t *testing.T) {
	t.Parallel()

	store, err := dataset.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	recs := store.Records()

	// Row two has blanks and a UK-format date.
	second := recs[1]
	assert.False(t, second.HasCoords)
	assert.Equal(t, dataset.UnknownInt, second.CasualtyAge)
	assert.True(t, math.IsNaN(second.EngineCapacityCC))
	assert.True(t, math.IsNaN(second.VehicleAge))
	assert.Equal(t, dataset.UnknownHour, second.Hour)
	assert.Equal(t, 6, int(second.Date.Month()))

	// Row three has an out-of-range sex code and a garbage capacity.
	third := recs[2]
	assert.Equal(t, -1, third.Sex)
	assert.True(t, math.IsNaN(third.EngineCapacityCC))
	assert.InDelta(t, 1.5, third.VehicleAge, 1e-9)
	assert.Equal(t, 23, third.Hour)
}

func TestReadMissingRequiredColumn(t *testing.T) {
	t.Parallel()

	_, err := dataset.Read(strings.NewReader("collision_index,date\nC1,2023-01-01\n"))
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestReadEmptyExtract(t *testing.T) {
	t.Parallel()

	_, err := dataset.Read(strings.NewReader("collision_index,collision_year,collision_severity\n"))
	require.ErrorIs(t, err, dataset.ErrEmptyExtract)
}

func TestLatestYearPair(t *testing.T) {
	t.Parallel()

	multi := dataset.NewStore([]dataset.Record{{Year: 2021}, {Year: 2023}, {Year: 2022}})
	current, prior := multi.LatestYearPair()
	assert.Equal(t, 2023, current)
	assert.Equal(t, 2022, prior)

	single := dataset.NewStore([]dataset.Record{{Year: 2024}})
	current, prior = single.LatestYearPair()
	assert.Equal(t, 2024, current)
	assert.Equal(t, 2024, prior)
}

func TestUnloadedStore(t *testing.T) {
	t.Parallel()

	var missing *dataset.Store

	assert.False(t, missing.Loaded())
	assert.False(t, new(dataset.Store).Loaded())
}
