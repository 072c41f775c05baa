package plotpage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Render(t *testing.T) {
	t.Parallel()

	page := NewPage("Casualty Overview", "Severity and demographics")
	page.StatusLine = "Current: 2023 | Prior: 2022"
	page.Add(Section{
		Title:    "Casualties by severity",
		Subtitle: "Click a bar to brush",
		Hint: Hint{
			Title: "Reading this chart",
			Items: []string{"Bars show the filtered year."},
		},
	})

	var buf bytes.Buffer

	err := page.Render(&buf)
	require.NoError(t, err)

	html := buf.String()

	assert.Contains(t, html, "Casualty Overview")
	assert.Contains(t, html, "Casualties by severity")
	assert.Contains(t, html, "Click a bar to brush")
	assert.Contains(t, html, "Reading this chart")
	assert.Contains(t, html, "Current: 2023 | Prior: 2022")
	assert.Contains(t, html, "cdn.tailwindcss.com")
	assert.Contains(t, html, "echarts.min.js")
	assert.NotContains(t, html, `class="dark"`)
}

func TestPage_RenderDarkTheme(t *testing.T) {
	t.Parallel()

	page := NewPage("Vehicles", "").WithTheme(ThemeDark)

	var buf bytes.Buffer

	err := page.Render(&buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `class="dark"`)
}

func TestPage_RenderNavLinks(t *testing.T) {
	t.Parallel()

	page := NewPage("Vehicles", "").WithNav([]NavLink{
		{Href: "index.html", Label: "Index"},
		{Href: "vehicles.html", Label: "Vehicles", Active: true},
	})

	var buf bytes.Buffer

	err := page.Render(&buf)
	require.NoError(t, err)

	html := buf.String()

	assert.Contains(t, html, `href="index.html"`)
	assert.Contains(t, html, `href="vehicles.html"`)
}

func TestExtractChartContent(t *testing.T) {
	t.Parallel()

	fragment := `<div class="item">chart</div>`
	assert.Equal(t, fragment, extractChartContent(fragment))

	full := `<!DOCTYPE html><html><head><style>.x{}</style></head><body>` +
		`<div class="container"><div class="item">chart</div><style>.y{}</style></div>` +
		`</body></html>`

	got := extractChartContent(full)

	assert.Contains(t, got, `class="echart-box"`)
	assert.Contains(t, got, `<div class="item">chart</div>`)
	assert.NotContains(t, got, "<style>")
	assert.NotContains(t, got, "</body>")
}

func TestRemoveStyleTags(t *testing.T) {
	t.Parallel()

	content := `a<style>.x{}</style>b<style>.y{}</style>c`
	assert.Equal(t, "abc", removeStyleTags(content))
}

func TestComponents_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		component Renderable
		contains  []string
	}{
		{
			name:      "stat with trend",
			component: NewStat("Collisions", "1,204").WithTrend("-3.1% vs prior", ToneGood),
			contains:  []string{"Collisions", "1,204", "-3.1% vs prior", "text-green-600"},
		},
		{
			name:      "alert",
			component: NewAlert("No data", "The filter excludes every record.", ToneWarn),
			contains:  []string{"No data", "border-yellow-500"},
		},
		{
			name:      "card with text",
			component: NewCard("Insights", "Year on year").WithContent(NewText("Fatal up 12%")),
			contains:  []string{"Insights", "Year on year", "Fatal up 12%"},
		},
		{
			name:      "table",
			component: NewTable([]string{"Severity", "Count"}).AddRow("Fatal", "12").AddRow("Serious", "90"),
			contains:  []string{"Severity", "Fatal", "90"},
		},
		{
			name: "grid",
			component: NewGrid(2,
				NewStat("A", "1"),
				NewStat("B", "2"),
			),
			contains: []string{"md:grid-cols-2", ">A<", ">B<"},
		},
		{
			name: "tabs",
			component: NewTabs("views",
				TabItem{ID: "first", Label: "First", Content: NewText("one")},
				TabItem{ID: "second", Label: "Second", Content: NewText("two")},
			),
			contains: []string{`data-tab-group="views"`, `data-tab-panel="second"`, "one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := tt.component.Render(&buf)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestText_Escapes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := NewText("<script>alert(1)</script>").Render(&buf)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
}

func TestMultiPageRenderer_RenderDashboardPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := &MultiPageRenderer{
		OutputDir: dir,
		Title:     "Road Collisions 2023",
		Theme:     ThemeLight,
	}

	pages := []PageMeta{
		{ID: "casualties", Title: "Casualties"},
		{ID: "vehicles", Title: "Vehicles"},
	}

	err := renderer.RenderDashboardPage(pages[0], "Current: 2023 | Prior: 2022", pages, []Section{
		{Title: "Severity"},
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, "casualties.html"))
	require.NoError(t, readErr)

	html := string(data)

	assert.Contains(t, html, "Road Collisions 2023")
	assert.Contains(t, html, "Severity")
	assert.Contains(t, html, `href="index.html"`)
	assert.Contains(t, html, `href="vehicles.html"`)
	assert.Contains(t, html, "Current: 2023 | Prior: 2022")
}

func TestMultiPageRenderer_RenderIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := &MultiPageRenderer{
		OutputDir: dir,
		Title:     "Road Collisions",
		Theme:     ThemeLight,
	}

	pages := []PageMeta{
		{ID: "casualties", Title: "Casualties", Description: "Severity and demographics"},
		{ID: "vehicles", Title: "Vehicles", Description: "Impact and conditions"},
		{ID: "roadsafety", Title: "Road Safety", Description: "KSI patterns"},
	}

	err := renderer.RenderIndex(pages)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, readErr)

	html := string(data)

	for _, p := range pages {
		assert.Contains(t, html, p.ID+".html")
		assert.Contains(t, html, p.Title)
		assert.Contains(t, html, p.Description)
	}

	// Links are relative so the output directory can be moved around.
	assert.False(t, strings.Contains(html, `href="/casualties.html"`))
}

func TestMultiPageRenderer_InvalidDir(t *testing.T) {
	t.Parallel()

	renderer := &MultiPageRenderer{
		OutputDir: "/nonexistent/path/that/does/not/exist",
		Title:     "Report",
		Theme:     ThemeLight,
	}

	err := renderer.RenderDashboardPage(PageMeta{ID: "x", Title: "X"}, "", nil, nil)
	require.Error(t, err)
}
