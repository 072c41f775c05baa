package aggregate

import (
	"sort"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Labeled is one labeled count for a chart slice or bar.
type Labeled struct {
	Label string
	Count int
}

// ImpactCounts counts distinct collisions per first-point-of-impact
// bucket. A collision showing several impact points counts once per
// distinct bucket. Zero buckets are dropped; order is impact sides
// first, then no-impact, then unknown.
func ImpactCounts(view []dataset.Record) []Labeled {
	counts := DistinctCollisionsBy(view, func(rec dataset.Record) string {
		return taxonomy.ImpactBucket(rec.ImpactCode)
	})

	out := make([]Labeled, 0, len(taxonomy.ImpactOrder))

	for _, bucket := range taxonomy.ImpactOrder {
		if counts[bucket] == 0 {
			continue
		}

		out = append(out, Labeled{Label: taxonomy.ImpactLabel(bucket), Count: counts[bucket]})
	}

	return out
}

// WeatherCounts counts distinct collisions per weather condition.
// Zero conditions are dropped; the rest sort descending by count with
// Unknown always last.
func WeatherCounts(view []dataset.Record) []Labeled {
	counts := DistinctCollisionsBy(view, func(rec dataset.Record) string {
		return taxonomy.WeatherLabel(rec.WeatherCode)
	})

	out := make([]Labeled, 0, len(counts))

	for label, n := range counts {
		if n > 0 {
			out = append(out, Labeled{Label: label, Count: n})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		iUnknown := out[i].Label == "Unknown"
		jUnknown := out[j].Label == "Unknown"

		if iUnknown != jUnknown {
			return jUnknown
		}

		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Label < out[j].Label
	})

	return out
}

// DriverAgeCounts counts distinct collisions per driver age group. A
// collision involving drivers from several groups counts once per
// group. Zero groups are dropped; scale order is kept.
func DriverAgeCounts(view []dataset.Record) []Labeled {
	counts := DistinctCollisionsBy(view, func(rec dataset.Record) string {
		return taxonomy.DriverAgeGroup(rec.DriverAge)
	})

	out := make([]Labeled, 0, len(taxonomy.DriverAgeGroups))

	for _, group := range taxonomy.DriverAgeGroups {
		if counts[group] == 0 {
			continue
		}

		out = append(out, Labeled{Label: group, Count: counts[group]})
	}

	return out
}

// DistanceCounts counts distinct collisions per casualty distance
// band, in band order. Every band is present, zeros included, so the
// band axis stays stable.
func DistanceCounts(view []dataset.Record) []Labeled {
	perBand := make(map[int]map[string]struct{}, len(taxonomy.DistanceBands))
	for _, band := range taxonomy.DistanceBands {
		perBand[band.Code] = make(map[string]struct{})
	}

	for i := range view {
		set, ok := perBand[view[i].DistanceBand]
		if !ok {
			continue
		}

		set[view[i].CollisionIndex] = struct{}{}
	}

	out := make([]Labeled, len(taxonomy.DistanceBands))
	for i, band := range taxonomy.DistanceBands {
		out[i] = Labeled{Label: band.Label, Count: len(perBand[band.Code])}
	}

	return out
}

// VehicleGroupCollisions counts distinct collisions per coarse vehicle
// group, in group display order, zeros included.
func VehicleGroupCollisions(view []dataset.Record) []Labeled {
	counts := DistinctCollisionsBy(view, func(rec dataset.Record) string {
		return taxonomy.VehicleGroup(rec.VehicleType)
	})

	out := make([]Labeled, len(taxonomy.CoarseVehicleGroups))
	for i, group := range taxonomy.CoarseVehicleGroups {
		out[i] = Labeled{Label: group, Count: counts[group]}
	}

	return out
}
