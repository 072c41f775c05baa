package charts

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

const (
	testCurrentYear = 2023
	testPriorYear   = 2022
)

func testRecord(index string, year, severity int) dataset.Record {
	return dataset.Record{
		CollisionIndex:   index,
		Year:             year,
		Date:             time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC),
		Month:            3,
		Severity:         severity,
		SpeedLimit:       30,
		VehicleType:      9, // Cars & Taxis.
		CasualtyClass:    taxonomy.ClassDriver,
		CasualtyAge:      34,
		Sex:              taxonomy.GenderMale,
		CasualtyType:     9,
		EngineCapacityCC: 1200,
		VehicleAge:       4,
		DriverAge:        34,
		WeatherCode:      1,
		ImpactCode:       1,
		DistanceBand:     2,
		DayOfWeek:        2, // Monday.
		Hour:             8,
		Longitude:        -0.12,
		Latitude:         51.5,
		HasCoords:        true,
	}
}

func testDashboard(t *testing.T) *Dashboard {
	t.Helper()

	records := []dataset.Record{
		testRecord("C1", testCurrentYear, 1),
		testRecord("C2", testCurrentYear, 2),
		testRecord("C3", testCurrentYear, 3),
		testRecord("P1", testPriorYear, 1),
		testRecord("P2", testPriorYear, 3),
	}

	store := dataset.NewStore(records)
	st := state.New(store.Years())

	return New(store, st)
}

func TestDashboard_Pages(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)
	pages := d.Pages()

	require.Len(t, pages, 3)
	assert.Equal(t, DashCasualties, pages[0].ID)
	assert.Equal(t, DashVehicles, pages[1].ID)
	assert.Equal(t, DashRoadSafety, pages[2].ID)
}

func TestDashboard_SectionsUnknownID(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)

	_, err := d.Sections("missing")
	require.ErrorIs(t, err, ErrUnknownDashboard)
}

func TestDashboard_SectionsRenderEndToEnd(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)

	for _, meta := range d.Pages() {
		sections, err := d.Sections(meta.ID)
		require.NoError(t, err)
		require.NotEmpty(t, sections)

		page := plotpage.NewPage(meta.Title, meta.Description)
		page.StatusLine = d.Status()
		page.Add(sections...)

		var buf bytes.Buffer

		renderErr := page.Render(&buf)
		require.NoError(t, renderErr, "page %s", meta.ID)
		assert.Contains(t, buf.String(), meta.Title)
	}
}

func TestDashboard_CasualtySectionTitles(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)

	sections, err := d.Sections(DashCasualties)
	require.NoError(t, err)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}

	assert.Contains(t, titles, "Casualties by severity")
	assert.Contains(t, titles, "Collisions by month")
	assert.Contains(t, titles, "Where collisions cluster")
	assert.Contains(t, titles, "Key insights")
}

func TestDashboard_BrushMutesUnselectedSeverity(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)
	d.state.ToggleBrush(state.BrushSeverity, state.SeverityValue(taxonomy.SeverityFatal), false)

	section := d.severitySection(firstView(d))

	var buf bytes.Buffer

	require.NoError(t, section.Chart.Render(&buf))

	html := buf.String()

	// Fatal keeps its color, the others collapse to the muted tone.
	assert.Contains(t, html, "#dc2626")
	assert.Contains(t, html, "#d6d3d1")
	assert.NotContains(t, html, "#e69f00")
}

func TestDashboard_InsightsTableValues(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)
	current, prior := d.views()

	section := d.insightsSection(current, prior)

	var buf bytes.Buffer

	require.NoError(t, section.Chart.Render(&buf))

	html := buf.String()

	// 3 current vs 2 prior casualties: +50.0%.
	assert.Contains(t, html, "+50.0%")
	assert.Contains(t, html, taxonomy.GroupCarsTaxis)
}

func TestDashboard_EmptyViewStillRenders(t *testing.T) {
	t.Parallel()

	d := testDashboard(t)
	d.state.SetDimension(state.DimSeverity, nil)

	for _, meta := range d.Pages() {
		sections, err := d.Sections(meta.ID)
		require.NoError(t, err)

		var first bytes.Buffer

		require.NoError(t, sections[0].Chart.Render(&first))
		assert.Contains(t, first.String(), "No matching records", "page %s", meta.ID)

		for _, section := range sections {
			if section.Chart == nil {
				continue
			}

			var buf bytes.Buffer

			require.NoError(t, section.Chart.Render(&buf), "section %q", section.Title)
		}
	}
}

func TestRoundShare(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 33.3, roundShare(1, 3), 1e-9)
	assert.InDelta(t, 100.0, roundShare(3, 3), 1e-9)
	assert.False(t, math.IsNaN(roundShare(0, 1)))
}

func firstView(d *Dashboard) []dataset.Record {
	current, _ := d.views()

	return current
}
