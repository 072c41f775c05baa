package charts

import (
	"fmt"
	"math"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/aggregate"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// percentFull is the stacked-share scale maximum.
const percentFull = 100.0

func (d *Dashboard) roadSafetySections() []plotpage.Section {
	current, _ := d.views()

	sections := []plotpage.Section{
		d.severitySection(current),
		d.classSeveritySection(current),
		d.ageClassSection(current),
		d.casualtyTypeSection(current),
		d.timeSection(current),
	}

	return d.withEmptyNotice(sections, current)
}

// classSeveritySection is the 100% stacked severity-share bar per
// casualty class.
func (d *Dashboard) classSeveritySection(current []dataset.Record) plotpage.Section {
	rows := aggregate.ClassSeverityRows(current)
	palette := plotpage.Severities()

	labels := make([]string, len(rows))
	fatal := make([]plotpage.SeriesData, len(rows))
	serious := make([]plotpage.SeriesData, len(rows))
	slight := make([]plotpage.SeriesData, len(rows))

	for i, row := range rows {
		labels[i] = row.Class

		total := row.Total()
		if total == 0 {
			fatal[i], serious[i], slight[i] = 0.0, 0.0, 0.0

			continue
		}

		fatal[i] = roundShare(row.Fatal, total)
		serious[i] = roundShare(row.Serious, total)
		slight[i] = roundShare(row.Slight, total)
	}

	series := []plotpage.BarSeries{
		{Name: "Fatal", Data: fatal, Color: palette.Fatal, Stack: "severity"},
		{Name: "Serious", Data: serious, Color: palette.Serious, Stack: "severity"},
		{Name: "Slight", Data: slight, Color: palette.Slight, Stack: "severity"},
	}

	return plotpage.Section{
		Title:    "Severity mix by casualty class",
		Subtitle: "Each bar stacks to 100%; unknown severities stay out of the mix.",
		Chart: plotpage.WrapChart(plotpage.BuildBarChart(d.chartOpts(), labels, series,
			"Share (%)")),
	}
}

// ageClassSection is the age band x class heatmap, with a tab per
// metric: KSI share and raw casualty count.
func (d *Dashboard) ageClassSection(current []dataset.Record) plotpage.Section {
	cells := aggregate.AgeClassCells(current)

	xIndex := make(map[string]int, len(taxonomy.AgeBands))
	for i, band := range taxonomy.AgeBands {
		xIndex[band] = i
	}

	yLabels := make([]string, len(taxonomy.ClassOrder))
	yIndex := make(map[string]int, len(taxonomy.ClassOrder))

	for i, class := range taxonomy.ClassOrder {
		yLabels[i] = taxonomy.ClassLabel(class)
		yIndex[yLabels[i]] = i
	}

	maxCount := 0
	shares := make([][3]any, 0, len(cells))
	counts := make([][3]any, 0, len(cells))

	for _, cell := range cells {
		x, y := xIndex[cell.AgeBand], yIndex[cell.Class]

		if cell.Count > maxCount {
			maxCount = cell.Count
		}

		shares = append(shares, [3]any{x, y, math.Round(cell.KSIShare * percentFull)})
		counts = append(counts, [3]any{x, y, cell.Count})
	}

	return plotpage.Section{
		Title:    "Casualties by age and class",
		Subtitle: "KSI share is the killed-or-seriously-injured fraction of each cell's casualties.",
		Chart: plotpage.NewTabs("age-class",
			plotpage.TabItem{
				ID:    "ksi-share",
				Label: "KSI share",
				Content: plotpage.WrapChart(plotpage.BuildHeatMapChart(d.chartOpts(),
					taxonomy.AgeBands, yLabels, shares, percentFull)),
			},
			plotpage.TabItem{
				ID:    "count",
				Label: "Casualties",
				Content: plotpage.WrapChart(plotpage.BuildHeatMapChart(d.chartOpts(),
					taxonomy.AgeBands, yLabels, counts, float32(maxCount))),
			},
		),
	}
}

// casualtyTypeSection ranks the most frequent casualty types.
func (d *Dashboard) casualtyTypeSection(current []dataset.Record) plotpage.Section {
	ranked := aggregate.TopCasualtyTypes(current, d.topN)
	palette := plotpage.CategoryPalette(d.theme)

	labels := make([]string, len(ranked))
	data := make([]plotpage.SeriesData, len(ranked))

	for i, r := range ranked {
		labels[i] = r.Category
		data[i] = r.Count
	}

	return plotpage.Section{
		Title:    fmt.Sprintf("Top %d casualty types", d.topN),
		Subtitle: "Casualty rows per reported casualty type.",
		Chart: plotpage.WrapChart(plotpage.BuildBarChart(d.chartOpts(), labels,
			[]plotpage.BarSeries{{Name: "Casualties", Data: data, Color: palette[3]}},
			"Casualties")),
	}
}

// timeSection is the day-of-week x hour heatmap.
func (d *Dashboard) timeSection(current []dataset.Record) plotpage.Section {
	cells := aggregate.TimeCells(current)

	hourLabels := make([]string, aggregate.HoursPerDay)
	for h := range hourLabels {
		hourLabels[h] = fmt.Sprintf("%02d", h)
	}

	dayIndex := make(map[string]int, len(taxonomy.DayNames))
	for i, day := range taxonomy.DayNames {
		dayIndex[day] = i
	}

	maxCount := 0
	values := make([][3]any, 0, len(cells))

	for _, cell := range cells {
		if cell.Count > maxCount {
			maxCount = cell.Count
		}

		values = append(values, [3]any{cell.Hour, dayIndex[cell.Day], cell.Count})
	}

	return plotpage.Section{
		Title:    "Casualties by day and hour",
		Subtitle: "Records with an unknown day or time are left off the grid.",
		Chart: plotpage.WrapChart(plotpage.BuildHeatMapChart(d.chartOpts(),
			hourLabels, taxonomy.DayNames, values, float32(maxCount))),
	}
}

// roundShare is the one-decimal percentage of part within total.
func roundShare(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*percentFull*10) / 10
}
