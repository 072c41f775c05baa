// Package server exposes the dashboards over HTTP: one route per
// dashboard page, with query parameters replayed into the shared filter
// state so every view is addressable by URL.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/charts"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
	"github.com/ufabox/InfoViz-25W/internal/dashboard/view"
	"github.com/ufabox/InfoViz-25W/internal/dataset"
	"github.com/ufabox/InfoViz-25W/internal/export"
	"github.com/ufabox/InfoViz-25W/internal/plotpage"
)

// reportTitle is the project name shown on every served page.
const reportTitle = "UK Road Collisions"

// Server serves the dashboards, the workbook export and the metrics
// endpoint from one loaded extract. The filter state is shared across
// requests and not safe for concurrent use, so every handler touching
// it holds mu.
type Server struct {
	echo      *echo.Echo
	store     *dataset.Store
	state     *state.State
	dashboard *charts.Dashboard
	exporter  *export.Exporter
	logger    *slog.Logger
	metrics   *Metrics

	mu        sync.Mutex
	debounce  time.Duration
	debouncer *state.Debouncer
}

// Option adjusts the server at construction time.
type Option func(*Server)

// WithDebounce sets the delay before the filtered-records gauge is
// recomputed after a burst of state changes.
func WithDebounce(d time.Duration) Option {
	return func(s *Server) { s.debounce = d }
}

// New wires the routes over the given store and state.
func New(store *dataset.Store, st *state.State, dash *charts.Dashboard, logger *slog.Logger, options ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:      e,
		store:     store,
		state:     st,
		dashboard: dash,
		exporter:  export.New(store, st),
		logger:    logger,
		metrics:   NewMetrics(),
		debounce:  state.DefaultDebounce,
	}

	for _, opt := range options {
		opt(s)
	}

	s.metrics.RecordsLoaded.Set(float64(store.Len()))
	s.metrics.FilteredRecords.Set(float64(s.filteredCount()))

	s.debouncer = state.NewDebouncer(s.debounce, s.refreshFilteredGauge)
	st.OnChange(s.debouncer.Trigger)

	e.Use(s.requestLogger)

	e.GET("/", s.handleIndex)
	e.GET("/dashboards/:name", s.handleDashboard)
	e.GET("/export.xlsx", s.handleExport)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("serving dashboards", "addr", addr)

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.debouncer.Stop()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

// filteredCount is the number of records passing the current filters
// for the current year. Callers hold mu except during construction.
func (s *Server) filteredCount() int {
	year, _ := s.state.YearPair()

	return len(view.Filtered(s.store.Records(), s.state, year))
}

// refreshFilteredGauge runs on the debouncer goroutine after a burst
// of state mutations settles.
func (s *Server) refreshFilteredGauge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.FilteredRecords.Set(float64(s.filteredCount()))
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		s.logger.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
		)

		return err
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	page := plotpage.NewPage("Collision Dashboards", "Select a dashboard to explore the extract.")
	page.ProjectName = reportTitle
	page.Theme = s.dashboard.Theme()
	page.NavLinks = s.navLinks("")

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	if err := page.Render(c.Response()); err != nil {
		return fmt.Errorf("render index: %w", err)
	}

	return nil
}

func (s *Server) handleDashboard(c echo.Context) error {
	name := c.Param("name")

	s.mu.Lock()

	if err := applyQuery(c, s.state); err != nil {
		s.mu.Unlock()

		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sections, err := s.dashboard.Sections(name)
	status := s.dashboard.Status()

	s.mu.Unlock()

	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	meta := s.pageMeta(name)

	page := plotpage.NewPage(meta.Title, meta.Description)
	page.ProjectName = reportTitle
	page.Theme = s.dashboard.Theme()
	page.StatusLine = status
	page.NavLinks = s.navLinks(name)
	page.Sections = sections

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	if renderErr := page.Render(c.Response()); renderErr != nil {
		s.metrics.RenderFailures.Inc()

		return fmt.Errorf("render %s: %w", name, renderErr)
	}

	s.metrics.PageRenders.WithLabelValues(name).Inc()

	return nil
}

func (s *Server) handleExport(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="collisions.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exporter.WriteXLSX(c.Response()); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.store.Len(),
		"years":   s.store.Years(),
	})
}

// navLinks builds the served navigation bar, index first.
func (s *Server) navLinks(active string) []plotpage.NavLink {
	links := []plotpage.NavLink{{Href: "/", Label: "Index"}}

	for _, meta := range s.dashboard.Pages() {
		links = append(links, plotpage.NavLink{
			Href:   "/dashboards/" + meta.ID,
			Label:  meta.Title,
			Active: meta.ID == active,
		})
	}

	return links
}

func (s *Server) pageMeta(id string) plotpage.PageMeta {
	for _, meta := range s.dashboard.Pages() {
		if meta.ID == id {
			return meta
		}
	}

	return plotpage.PageMeta{ID: id, Title: id}
}
