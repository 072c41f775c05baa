package plotpage

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

const (
	indexFileName    = "index.html"
	indexTitle       = "Collision Dashboards"
	indexDescription = "Select a dashboard to explore the collision extract."
)

// PageMeta carries metadata about a rendered dashboard page for the index.
type PageMeta struct {
	ID          string // Filename stem, e.g. "casualties", "vehicles".
	Title       string // Display title, e.g. "Casualty Overview".
	Description string // Short description for the index card.
}

// MultiPageRenderer produces per-dashboard HTML pages plus an index page.
type MultiPageRenderer struct {
	OutputDir string // Directory to write HTML files into.
	Title     string // Report title shown on every page.
	Theme     Theme  // ThemeLight or ThemeDark.
}

// RenderDashboardPage renders a single dashboard page to <OutputDir>/<id>.html.
// Each page is standalone HTML with echarts + tailwind CDN and a navigation
// bar linking the sibling pages.
func (r *MultiPageRenderer) RenderDashboardPage(meta PageMeta, status string, siblings []PageMeta, sections []Section) error {
	page := NewPage(meta.Title, meta.Description)
	page.Theme = r.Theme
	page.ProjectName = r.Title
	page.StatusLine = status
	page.NavLinks = navLinks(meta.ID, siblings)
	page.Sections = sections

	outPath := filepath.Join(r.OutputDir, meta.ID+".html")

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	renderErr := HTMLRenderer{}.Render(f, page)
	if renderErr != nil {
		return fmt.Errorf("render %s: %w", meta.ID, renderErr)
	}

	return nil
}

// RenderIndex renders an index page with navigation cards to <OutputDir>/index.html.
func (r *MultiPageRenderer) RenderIndex(pages []PageMeta) error {
	page := NewPage(indexTitle, indexDescription)
	page.Theme = r.Theme
	page.ProjectName = r.Title

	indexContent, err := renderTemplate("index.html", indexData{Pages: pages})
	if err != nil {
		return fmt.Errorf("render index content: %w", err)
	}

	page.Sections = []Section{
		{Chart: rawHTML(indexContent)},
	}

	outPath := filepath.Join(r.OutputDir, indexFileName)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	renderErr := HTMLRenderer{}.Render(f, page)
	if renderErr != nil {
		return fmt.Errorf("render index: %w", renderErr)
	}

	return nil
}

// navLinks builds the header navigation for a dashboard page, marking the
// current page active and always linking back to the index.
func navLinks(activeID string, siblings []PageMeta) []NavLink {
	links := make([]NavLink, 0, len(siblings)+1)
	links = append(links, NavLink{Href: indexFileName, Label: "Index"})

	for _, p := range siblings {
		links = append(links, NavLink{
			Href:   p.ID + ".html",
			Label:  p.Title,
			Active: p.ID == activeID,
		})
	}

	return links
}

// indexData holds template data for index.html.
type indexData struct {
	Pages []PageMeta
}

// rawHTML is a Renderable that writes pre-rendered HTML.
type rawHTML template.HTML

// Render writes the raw HTML content.
func (r rawHTML) Render(w io.Writer) error {
	_, err := w.Write([]byte(r))
	if err != nil {
		return fmt.Errorf("write raw html: %w", err)
	}

	return nil
}
