package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Default chart canvas.
const (
	chartWidth  = "100%"
	chartHeight = "500px"
)

// SeriesData represents a single numeric value in a chart series.
// any allows both int and float64 values.
type SeriesData any

// BarItem is one bar with optional per-item styling, used when bars in
// the same series carry different colors (severity palettes, brush
// emphasis).
type BarItem struct {
	Value   SeriesData
	Color   string  // Optional, series color if empty.
	Opacity float32 // Optional, fully opaque if zero.
}

// BarSeries defines the properties and data for a single bar chart series.
type BarSeries struct {
	Name  string
	Data  []SeriesData
	Items []BarItem // Optional, takes precedence over Data.
	Color string    // Optional, uses theme if empty.
	Stack string    // Optional, stack grouping.
}

// LineSeries defines the properties and data for a single line chart series.
type LineSeries struct {
	Name   string
	Data   []SeriesData
	Color  string // Optional, uses theme if empty.
	Dashed bool   // Optional, dashed stroke (prior-period series).
	Smooth bool   // Optional, monotone-style smoothing.
}

// PieSlice is one labeled slice of a pie chart.
type PieSlice struct {
	Name  string
	Value SeriesData
	Color string // Optional.
}

// BuildBarChart constructs a fully configured go-echarts Bar chart using ChartOpts.
// If cOpts is nil, DefaultChartOpts() is used.
func BuildBarChart(cOpts *ChartOpts, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	bar.SetXAxis(labels)

	for _, s := range series {
		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		if s.Stack != "" {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: s.Stack}))
		}

		bar.AddSeries(s.Name, barData(s), seriesOpts...)
	}

	return bar
}

func barData(s BarSeries) []opts.BarData {
	if len(s.Items) > 0 {
		data := make([]opts.BarData, len(s.Items))

		for i, item := range s.Items {
			data[i] = opts.BarData{Value: item.Value}

			if item.Color != "" || item.Opacity > 0 {
				style := &opts.ItemStyle{Color: item.Color}
				if item.Opacity > 0 {
					style.Opacity = opts.Float(item.Opacity)
				}

				data[i].ItemStyle = style
			}
		}

		return data
	}

	data := make([]opts.BarData, len(s.Data))
	for i, v := range s.Data {
		data[i] = opts.BarData{Value: v}
	}

	return data
}

// BuildLineChart constructs a fully configured go-echarts Line chart using ChartOpts.
// If cOpts is nil, DefaultChartOpts() is used.
func BuildLineChart(cOpts *ChartOpts, labels []string, series []LineSeries, yAxisLabel string) *charts.Line {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	line.SetXAxis(labels)

	for _, s := range series {
		lineData := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			lineData[i] = opts.LineData{Value: v}
		}

		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			lineStyle := opts.LineStyle{Color: s.Color}
			if s.Dashed {
				lineStyle.Type = "dashed"
			}

			seriesOpts = append(seriesOpts,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
				charts.WithLineStyleOpts(lineStyle),
			)
		} else if s.Dashed {
			seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
		}

		if s.Smooth {
			seriesOpts = append(seriesOpts, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		}

		line.AddSeries(s.Name, lineData, seriesOpts...)
	}

	return line
}

// BuildPieChart constructs a themed pie chart with percentage labels.
func BuildPieChart(cOpts *ChartOpts, name string, slices []PieSlice) *charts.Pie {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{Name: s.Name, Value: s.Value}

		if s.Color != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: s.Color}
		}
	}

	pie.AddSeries(name, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
			Color:     cOpts.TextColor(),
		}),
	)

	return pie
}

// BuildHeatMapChart constructs a themed heatmap over categorical x/y
// axes. values holds [xIndex, yIndex, value] triples.
func BuildHeatMapChart(cOpts *ChartOpts, xLabels, yLabels []string, values [][3]any, maxValue float32) *charts.HeatMap {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	heat := charts.NewHeatMap()
	heat.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      xLabels,
			AxisLabel: &opts.AxisLabel{Color: cOpts.TextMutedColor()},
		}),
		charts.WithYAxisOpts(cOpts.CategoryYAxis(yLabels)),
		charts.WithVisualMapOpts(cOpts.VisualMap(maxValue, []string{"#e0f2fe", "#0369a1", "#dc2626"})),
	)

	data := make([]opts.HeatMapData, len(values))
	for i, v := range values {
		data[i] = opts.HeatMapData{Value: [3]any{v[0], v[1], v[2]}}
	}

	heat.AddSeries("heat", data)

	return heat
}

// ScatterSeries defines one colored point cloud of a scatter chart.
type ScatterSeries struct {
	Name       string
	Points     [][2]float64
	Color      string
	Symbol     string // Optional, defaults to circle.
	SymbolSize int    // Optional.
}

// BuildScatterChart constructs a themed scatter chart over numeric
// axes. Axis labels are hidden; the chart reads as a point map.
func BuildScatterChart(cOpts *ChartOpts, series []ScatterSeries) *charts.Scatter {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithLegendOpts(cOpts.Legend()),
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(false)}),
	)

	for _, s := range series {
		data := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.ScatterData{
				Value:      []float64{p[0], p[1]},
				Symbol:     s.Symbol,
				SymbolSize: s.SymbolSize,
			}
		}

		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		scatter.AddSeries(s.Name, data, seriesOpts...)
	}

	return scatter
}

// BuildTreeMapChart constructs a themed treemap from labeled counts.
func BuildTreeMapChart(cOpts *ChartOpts, name string, nodes []opts.TreeMapNode) *charts.TreeMap {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	tree := charts.NewTreeMap()
	tree.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, chartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
	)

	tree.AddSeries(name, nodes,
		charts.WithTreeMapOpts(opts.TreeMapChart{
			Roam: opts.Bool(false),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Color: "#ffffff"}),
	)

	return tree
}
