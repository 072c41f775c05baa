package aggregate

import (
	"math"
	"sort"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Default projection canvas and bin size in projected pixels.
const (
	DefaultGridWidth  = 760.0
	DefaultGridHeight = 920.0
	DefaultCellSize   = 7.0
)

// Projection maps lon/lat onto a fitted Web-Mercator plane. The fit is
// computed from the coordinate extent of the records themselves, the
// same way a map projection is fitted to its region bounds before
// binning.
type Projection struct {
	scale      float64
	translateX float64
	translateY float64
	valid      bool
}

// FitProjection fits a Mercator projection of the records' coordinate
// extent into a width x height canvas. Records without coordinates are
// ignored; with no usable coordinates the projection is invalid and
// projects nothing.
func FitProjection(view []dataset.Record, width, height float64) Projection {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for i := range view {
		if !view[i].HasCoords {
			continue
		}

		x, y, ok := mercator(view[i].Longitude, view[i].Latitude)
		if !ok {
			continue
		}

		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	if minX > maxX || minY > maxY {
		return Projection{}
	}

	dx := maxX - minX
	dy := maxY - minY

	scale := math.Inf(1)
	if dx > 0 {
		scale = width / dx
	}

	if dy > 0 {
		scale = math.Min(scale, height/dy)
	}

	if math.IsInf(scale, 1) {
		// Degenerate extent (single point); any finite scale centers it.
		scale = 1
	}

	return Projection{
		scale:      scale,
		translateX: width/2 - scale*(minX+maxX)/2,
		translateY: height/2 - scale*(minY+maxY)/2,
		valid:      true,
	}
}

// Project maps a coordinate pair to canvas pixels.
func (p Projection) Project(lon, lat float64) (x, y float64, ok bool) {
	if !p.valid {
		return 0, 0, false
	}

	mx, my, ok := mercator(lon, lat)
	if !ok {
		return 0, 0, false
	}

	return p.scale*mx + p.translateX, p.scale*my + p.translateY, true
}

// mercator is the spherical Mercator forward transform, y increasing
// southward to match screen coordinates.
func mercator(lon, lat float64) (x, y float64, ok bool) {
	const maxLat = 85.0

	if math.Abs(lat) > maxLat || math.Abs(lon) > 180 {
		return 0, 0, false
	}

	phi := lat * math.Pi / 180

	return lon * math.Pi / 180, -math.Log(math.Tan(math.Pi/4 + phi/2)), true
}

// Bin is one fixed-size spatial cell with per-severity tallies.
type Bin struct {
	X          int
	Y          int
	Total      int
	BySeverity map[taxonomy.Severity]int
	Dominant   taxonomy.Severity
}

// GridBins partitions coordinate-bearing records into cell x cell
// pixel bins on the fitted projection. Records without coordinates are
// silently omitted; they still count in every non-spatial aggregate.
// Bins come back sorted by (Y, X) for deterministic output.
func GridBins(view []dataset.Record, cell float64) []Bin {
	if cell <= 0 {
		cell = DefaultCellSize
	}

	proj := FitProjection(view, DefaultGridWidth, DefaultGridHeight)

	type key struct{ gx, gy int }

	bins := make(map[key]*Bin)

	for i := range view {
		if !view[i].HasCoords {
			continue
		}

		x, y, ok := proj.Project(view[i].Longitude, view[i].Latitude)
		if !ok {
			continue
		}

		k := key{gx: int(math.Floor(x / cell)), gy: int(math.Floor(y / cell))}

		bin, exists := bins[k]
		if !exists {
			bin = &Bin{X: k.gx, Y: k.gy, BySeverity: make(map[taxonomy.Severity]int)}
			bins[k] = bin
		}

		bin.Total++
		bin.BySeverity[taxonomy.ParseSeverity(view[i].Severity)]++
	}

	out := make([]Bin, 0, len(bins))

	for _, bin := range bins {
		bin.Dominant = DominantSeverity(bin.BySeverity)
		out = append(out, *bin)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// DominantSeverity picks the severity with the maximum tally. Ties at
// the maximum resolve by the fixed priority order Fatal > Serious >
// Slight > Unknown.
func DominantSeverity(tallies map[taxonomy.Severity]int) taxonomy.Severity {
	maxTally := 0
	for _, n := range tallies {
		if n > maxTally {
			maxTally = n
		}
	}

	for _, sev := range taxonomy.SeverityPriority {
		if tallies[sev] == maxTally {
			return sev
		}
	}

	return taxonomy.SeverityUnknown
}
