// Package dataset loads the road-collision CSV extract into an
// immutable in-memory store of typed records. All string-to-number
// coercion happens once here; downstream classifiers and aggregates
// only ever see typed values.
package dataset

import (
	"time"
)

// Unknown sentinels applied during coercion.
const (
	UnknownInt  = -1
	UnknownHour = -1
)

// Record is one casualty row joined with its parent collision and
// vehicle fields. Records are immutable once loaded.
type Record struct {
	CollisionIndex string
	Year           int
	Date           time.Time // Zero when unparseable.
	Month          int       // 1..12, UnknownInt when absent.
	Severity       int       // Normalized severity code.
	SpeedLimit     int       // UnknownInt when absent.

	Longitude float64
	Latitude  float64
	HasCoords bool

	VehicleType   int
	CasualtyClass int
	CasualtyAge   int // UnknownInt when absent or negative.
	Sex           int // Normalized gender code.
	CasualtyType  int

	EngineCapacityCC float64 // NaN when absent.
	VehicleAge       float64 // NaN when absent.
	DriverAge        int     // UnknownInt when absent.

	WeatherCode  int // UnknownInt when absent.
	ImpactCode   int // UnknownInt when absent.
	DistanceBand int // UnknownInt when absent.

	DayOfWeek int // 1 = Sunday per the source coding, UnknownInt when absent.
	Hour      int // 0..23, UnknownHour when the time field is absent.
}
