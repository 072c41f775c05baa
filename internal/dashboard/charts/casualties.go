package charts

import (
	"strconv"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Spatial grid rendering.
const (
	gridSymbol     = "rect"
	gridSymbolSize = 6
)

// mutedOpacity de-emphasizes bars outside the active brush selection.
const mutedOpacity = 0.35

func (d *Dashboard) casualtySections() []plotpage.Section {
	current, prior := d.views()

	sections := []plotpage.Section{
		d.kpiSection(current, prior),
		d.severitySection(current),
		d.genderSection(current),
		d.monthlySection(current, prior),
		d.vehicleGroupSection(current),
		d.gridSection(current),
		d.insightsSection(current, prior),
	}

	return d.withEmptyNotice(sections, current)
}

// kpiSection is the headline stat row.
func (d *Dashboard) kpiSection(current, prior []dataset.Record) plotpage.Section {
	ksi := 0

	for i := range current {
		if taxonomy.ParseSeverity(current[i].Severity).IsKSI() {
			ksi++
		}
	}

	yoy := aggregate.YoY(len(current), len(prior))

	return plotpage.Section{
		Title: "At a glance",
		Chart: plotpage.NewGrid(4,
			plotpage.NewStat("Casualties", formatCount(len(current))).
				WithTrend(formatDelta(yoy)+" vs prior year", deltaTone(yoy)),
			plotpage.NewStat("Collisions", formatCount(aggregate.DistinctCollisions(current))),
			plotpage.NewStat("Killed or seriously injured", formatCount(ksi)),
			plotpage.NewStat("Prior year casualties", formatCount(len(prior))),
		),
	}
}

// severitySection is the brushable severity bar.
func (d *Dashboard) severitySection(current []dataset.Record) plotpage.Section {
	counts := aggregate.SeverityCounts(current)
	palette := plotpage.Severities()
	brush := d.state.Brush()

	labels := make([]string, len(taxonomy.SeverityOrder))
	items := make([]plotpage.BarItem, len(taxonomy.SeverityOrder))

	for i, sev := range taxonomy.SeverityOrder {
		labels[i] = sev.Label()

		item := plotpage.BarItem{
			Value: counts[sev.Label()],
			Color: palette.SeverityColor(sev.Label()),
		}

		if brush.Active() && brush.Kind == state.BrushSeverity && !brush.Has(state.SeverityValue(sev)) {
			item.Color = palette.Muted
			item.Opacity = mutedOpacity
		}

		items[i] = item
	}

	currentYear, _ := d.state.YearPair()

	return plotpage.Section{
		Title:    "Casualties by severity",
		Subtitle: "Brushing a severity de-emphasizes the others across every chart.",
		Chart: plotpage.WrapChart(plotpage.BuildBarChart(d.chartOpts(), labels,
			[]plotpage.BarSeries{{Name: strconv.Itoa(currentYear), Items: items}},
			"Casualties")),
	}
}

// genderSection is the casualty sex pie.
func (d *Dashboard) genderSection(current []dataset.Record) plotpage.Section {
	counts := aggregate.CountBy(current, func(rec dataset.Record) string {
		return taxonomy.GenderLabel(rec.Sex)
	})

	palette := plotpage.Genders()

	slices := make([]plotpage.PieSlice, 0, len(taxonomy.GenderOrder))

	for _, code := range taxonomy.GenderOrder {
		label := taxonomy.GenderLabel(code)
		if counts[label] == 0 {
			continue
		}

		slices = append(slices, plotpage.PieSlice{
			Name:  label,
			Value: counts[label],
			Color: palette.GenderColor(label),
		})
	}

	return plotpage.Section{
		Title: "Casualties by sex",
		Chart: plotpage.WrapChart(plotpage.BuildPieChart(d.chartOpts(), "Sex", slices)),
	}
}

// monthlySection compares the monthly collision series of both years.
func (d *Dashboard) monthlySection(current, prior []dataset.Record) plotpage.Section {
	currentYear, priorYear := d.state.YearPair()
	palette := plotpage.CategoryPalette(d.theme)

	series := []plotpage.LineSeries{
		{
			Name:   strconv.Itoa(currentYear),
			Data:   toSeriesData(aggregate.MonthlyCollisions(current)),
			Color:  palette[0],
			Smooth: true,
		},
		{
			Name:   strconv.Itoa(priorYear),
			Data:   toSeriesData(aggregate.MonthlyCollisions(prior)),
			Color:  palette[1],
			Dashed: true,
			Smooth: true,
		},
	}

	return plotpage.Section{
		Title:    "Collisions by month",
		Subtitle: "Distinct collisions per month; the dashed series is the prior year.",
		Chart: plotpage.WrapChart(plotpage.BuildLineChart(d.chartOpts(),
			aggregate.MonthNames, series, "Collisions")),
	}
}

// vehicleGroupSection is the brushable coarse vehicle-group bar.
func (d *Dashboard) vehicleGroupSection(current []dataset.Record) plotpage.Section {
	groups := aggregate.VehicleGroupCollisions(current)
	palette := plotpage.CategoryPalette(d.theme)
	muted := plotpage.Severities().Muted
	brush := d.state.Brush()

	labels := make([]string, len(groups))
	items := make([]plotpage.BarItem, len(groups))

	for i, g := range groups {
		labels[i] = g.Label

		item := plotpage.BarItem{
			Value: g.Count,
			Color: palette[i%len(palette)],
		}

		if brush.Active() && brush.Kind == state.BrushVehicle && !brush.Has(g.Label) {
			item.Color = muted
			item.Opacity = mutedOpacity
		}

		items[i] = item
	}

	return plotpage.Section{
		Title:    "Collisions by vehicle group",
		Subtitle: "A collision involving several vehicle groups counts once per group.",
		Chart: plotpage.WrapChart(plotpage.BuildBarChart(d.chartOpts(), labels,
			[]plotpage.BarSeries{{Name: "Collisions", Items: items}},
			"Collisions")),
	}
}

// gridSection is the dominant-severity spatial grid.
func (d *Dashboard) gridSection(current []dataset.Record) plotpage.Section {
	bins := aggregate.GridBins(current, d.cellSize)
	palette := plotpage.Severities()

	points := make(map[taxonomy.Severity][][2]float64)

	for _, bin := range bins {
		// Flip Y back to north-up: the projection uses screen coordinates.
		points[bin.Dominant] = append(points[bin.Dominant],
			[2]float64{float64(bin.X), -float64(bin.Y)})
	}

	series := make([]plotpage.ScatterSeries, 0, len(taxonomy.SeverityPriority))

	for _, sev := range taxonomy.SeverityPriority {
		if len(points[sev]) == 0 {
			continue
		}

		series = append(series, plotpage.ScatterSeries{
			Name:       sev.Label(),
			Points:     points[sev],
			Color:      palette.SeverityColor(sev.Label()),
			Symbol:     gridSymbol,
			SymbolSize: gridSymbolSize,
		})
	}

	return plotpage.Section{
		Title:    "Where collisions cluster",
		Subtitle: "Each cell is colored by its dominant severity; ties resolve toward the worse outcome.",
		Chart:    plotpage.WrapChart(plotpage.BuildScatterChart(d.chartOpts(), series)),
	}
}

// insightsSection renders the derived key-insights table.
func (d *Dashboard) insightsSection(current, prior []dataset.Record) plotpage.Section {
	ins := aggregate.ComputeInsights(current, prior)

	table := plotpage.NewTable([]string{"Insight", "Value"}).
		AddRow("Casualties, current year", formatCount(ins.CurrentTotal)).
		AddRow("Casualties, prior year", formatCount(ins.PriorTotal)).
		AddRow("Year-on-year change", formatDelta(ins.TotalYoY)).
		AddRow("Male share of fatal casualties", formatShare(ins.FatalMaleShare))

	if ins.TopVehicleGroup != "" {
		table.AddRow("Most involved vehicle group",
			ins.TopVehicleGroup+" ("+formatCount(ins.TopVehicleCount)+" casualties, "+
				formatShare(ins.TopVehicleFatalShare)+" fatal)")
	}

	if ins.BiggestMover != nil {
		table.AddRow("Biggest severity mover",
			ins.BiggestMover.Category+" ("+formatDelta(ins.BiggestMover.Percent)+")")
	}

	return plotpage.Section{
		Title:    "Key insights",
		Subtitle: "Derived from the filtered comparison of both years.",
		Chart:    table,
	}
}

func toSeriesData(values []int) []plotpage.SeriesData {
	out := make([]plotpage.SeriesData, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
