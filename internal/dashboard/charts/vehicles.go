package charts

import (
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
)

func (d *Dashboard) vehicleSections() []plotpage.Section {
	current, _ := d.views()

	sections := []plotpage.Section{
		d.vehicleStatSection(current),
		d.impactSection(current),
		d.weatherSection(current),
		d.driverAgeSection(current),
		d.distanceSection(current),
	}

	return d.withEmptyNotice(sections, current)
}

// vehicleStatSection shows one stat per coarse vehicle group.
func (d *Dashboard) vehicleStatSection(current []dataset.Record) plotpage.Section {
	groups := aggregate.VehicleGroupCollisions(current)

	stats := make([]plotpage.Renderable, len(groups))
	for i, g := range groups {
		stats[i] = plotpage.NewStat(g.Label, formatCount(g.Count))
	}

	return plotpage.Section{
		Title:    "Collisions by vehicle group",
		Subtitle: "Distinct collisions involving each group.",
		Chart:    plotpage.NewGrid(3, stats...),
	}
}

// impactSection is the first-point-of-impact treemap.
func (d *Dashboard) impactSection(current []dataset.Record) plotpage.Section {
	buckets := aggregate.ImpactCounts(current)

	nodes := make([]opts.TreeMapNode, len(buckets))
	for i, b := range buckets {
		nodes[i] = opts.TreeMapNode{Name: b.Label, Value: b.Count}
	}

	return plotpage.Section{
		Title:    "First point of impact",
		Subtitle: "A collision with several impact points counts once per distinct point.",
		Chart:    plotpage.WrapChart(plotpage.BuildTreeMapChart(d.chartOpts(), "Impact", nodes)),
	}
}

// weatherSection is the weather-condition bar, busiest condition first.
func (d *Dashboard) weatherSection(current []dataset.Record) plotpage.Section {
	conditions := aggregate.WeatherCounts(current)
	palette := plotpage.CategoryPalette(d.theme)

	labels := make([]string, len(conditions))
	data := make([]plotpage.SeriesData, len(conditions))

	for i, c := range conditions {
		labels[i] = c.Label
		data[i] = c.Count
	}

	return plotpage.Section{
		Title: "Collisions by weather",
		Chart: plotpage.WrapChart(plotpage.BuildBarChart(d.chartOpts(), labels,
			[]plotpage.BarSeries{{Name: "Collisions", Data: data, Color: palette[0]}},
			"Collisions")),
	}
}

// driverAgeSection is the driver age-group pie.
func (d *Dashboard) driverAgeSection(current []dataset.Record) plotpage.Section {
	groups := aggregate.DriverAgeCounts(current)
	palette := plotpage.CategoryPalette(d.theme)

	slices := make([]plotpage.PieSlice, len(groups))
	for i, g := range groups {
		slices[i] = plotpage.PieSlice{
			Name:  g.Label,
			Value: g.Count,
			Color: palette[i%len(palette)],
		}
	}

	return plotpage.Section{
		Title:    "Collisions by driver age",
		Subtitle: "A collision involving drivers from several age groups counts once per group.",
		Chart:    plotpage.WrapChart(plotpage.BuildPieChart(d.chartOpts(), "Driver age", slices)),
	}
}

// distanceSection is the casualty-distance line over the fixed bands.
func (d *Dashboard) distanceSection(current []dataset.Record) plotpage.Section {
	bands := aggregate.DistanceCounts(current)
	palette := plotpage.CategoryPalette(d.theme)

	labels := make([]string, len(bands))
	data := make([]plotpage.SeriesData, len(bands))

	for i, b := range bands {
		labels[i] = b.Label
		data[i] = b.Count
	}

	return plotpage.Section{
		Title:    "Collisions by distance from home",
		Subtitle: "Every band is kept on the axis, empty bands included.",
		Chart: plotpage.WrapChart(plotpage.BuildLineChart(d.chartOpts(), labels,
			[]plotpage.LineSeries{{Name: "Collisions", Data: data, Color: palette[2], Smooth: true}},
			"Collisions")),
	}
}
