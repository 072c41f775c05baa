package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus instruments. Each server owns
// an independent registry to avoid collector conflicts when several
// servers exist in one process (tests do this).
type Metrics struct {
	registry *prometheus.Registry

	PageRenders     *prometheus.CounterVec
	RenderFailures  prometheus.Counter
	RecordsLoaded   prometheus.Gauge
	FilteredRecords prometheus.Gauge
}

// NewMetrics creates the instruments on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roadviz_page_renders_total",
			Help: "Dashboard pages rendered, by dashboard ID.",
		}, []string{"dashboard"}),
		RenderFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "roadviz_render_failures_total",
			Help: "Dashboard renders that returned an error.",
		}),
		RecordsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roadviz_records_loaded",
			Help: "Casualty records in the loaded extract.",
		}),
		FilteredRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roadviz_filtered_records",
			Help: "Casualty records passing the current filter state.",
		}),
	}
}

// Handler serves the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
