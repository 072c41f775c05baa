// Package charts assembles the three dashboard pages from the shared
// filter state and the loaded extract. Every section is recomputed from
// the filtered view on each call, so the pages always reflect the
// state's current selections and brush.
package charts

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/view"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
)

// DefaultTopN bounds the ranked casualty-type chart.
const DefaultTopN = 10

// Dashboard page IDs.
const (
	DashCasualties = "casualties"
	DashVehicles   = "vehicles"
	DashRoadSafety = "roadsafety"
)

// ErrUnknownDashboard is returned for a page ID outside the known set.
var ErrUnknownDashboard = errors.New("charts: unknown dashboard")

// Dashboard builds dashboard sections from a loaded store and the
// shared filter state.
type Dashboard struct {
	store    *dataset.Store
	state    *state.State
	theme    plotpage.Theme
	cellSize float64
	topN     int
}

// Option customizes a Dashboard.
type Option func(*Dashboard)

// WithTheme sets the page and chart theme.
func WithTheme(theme plotpage.Theme) Option {
	return func(d *Dashboard) {
		d.theme = theme
	}
}

// WithCellSize sets the spatial bin size in projected pixels.
func WithCellSize(cell float64) Option {
	return func(d *Dashboard) {
		d.cellSize = cell
	}
}

// WithTopN bounds ranked charts to the first n categories.
func WithTopN(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.topN = n
		}
	}
}

// New creates a Dashboard over the given store and state.
func New(store *dataset.Store, st *state.State, options ...Option) *Dashboard {
	d := &Dashboard{
		store: store,
		state: st,
		theme: plotpage.ThemeLight,
		topN:  DefaultTopN,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Theme returns the configured theme.
func (d *Dashboard) Theme() plotpage.Theme {
	return d.theme
}

// Status returns the filter summary line shown on every page.
func (d *Dashboard) Status() string {
	return d.state.Summary()
}

// Pages lists the dashboard pages in navigation order.
func (d *Dashboard) Pages() []plotpage.PageMeta {
	return []plotpage.PageMeta{
		{
			ID:          DashCasualties,
			Title:       "Casualties",
			Description: "Severity, demographics and where collisions cluster.",
		},
		{
			ID:          DashVehicles,
			Title:       "Vehicles",
			Description: "Impact points, conditions and the vehicle mix.",
		},
		{
			ID:          DashRoadSafety,
			Title:       "Road Safety",
			Description: "KSI patterns across casualty class, age and time.",
		},
	}
}

// Sections builds the chart sections for one dashboard page.
func (d *Dashboard) Sections(id string) ([]plotpage.Section, error) {
	switch id {
	case DashCasualties:
		return d.casualtySections(), nil
	case DashVehicles:
		return d.vehicleSections(), nil
	case DashRoadSafety:
		return d.roadSafetySections(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDashboard, id)
	}
}

// views returns the filtered record sets for the current and prior year.
func (d *Dashboard) views() (current, prior []dataset.Record) {
	currentYear, priorYear := d.state.YearPair()

	return view.Filtered(d.store.Records(), d.state, currentYear),
		view.Filtered(d.store.Records(), d.state, priorYear)
}

// withEmptyNotice prepends a warning section when the current-year
// filtered view is empty, so a page full of blank charts explains
// itself.
func (d *Dashboard) withEmptyNotice(sections []plotpage.Section, current []dataset.Record) []plotpage.Section {
	if len(current) > 0 {
		return sections
	}

	notice := plotpage.Section{
		Chart: plotpage.NewAlert("No matching records",
			"The current filters exclude every record. Charts below are empty; reset the filters to start over.",
			plotpage.ToneWarn),
	}

	return append([]plotpage.Section{notice}, sections...)
}

func (d *Dashboard) chartOpts() *plotpage.ChartOpts {
	return plotpage.NewChartOpts(d.theme)
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// formatDelta renders a signed percentage; nil means not computable.
func formatDelta(pct *float64) string {
	if pct == nil {
		return "n/a"
	}

	return fmt.Sprintf("%+.1f%%", *pct)
}

// formatShare renders an unsigned percentage share.
func formatShare(pct *float64) string {
	if pct == nil {
		return "n/a"
	}

	return fmt.Sprintf("%.1f%%", *pct)
}

// deltaTone maps a casualty delta to its trend tone: fewer casualties
// reads as good.
func deltaTone(pct *float64) plotpage.Tone {
	switch {
	case pct == nil:
		return plotpage.ToneNeutral
	case *pct > 0:
		return plotpage.ToneBad
	case *pct < 0:
		return plotpage.ToneGood
	default:
		return plotpage.ToneNeutral
	}
}
