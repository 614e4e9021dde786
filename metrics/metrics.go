// Package metrics holds the Prometheus collectors of the server. Every
// method is safe on a nil *Metrics so callers that run without metrics
// (the CLI, most tests) need no special casing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OUTCOME_OK         = "ok"
	OUTCOME_NO_RESULTS = "no_results"

	REFRESH_SUCCESS = "success"
	REFRESH_FAILURE = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	venueQueries     *prometheus.CounterVec
	resultSize       prometheus.Histogram
	catalogSize      prometheus.Gauge
	catalogRefreshes *prometheus.CounterVec
}

// New registers all collectors on a fresh registry under namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		venueQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venue_queries_total",
			Help:      "Venue listing queries by sort key and outcome.",
		}, []string{"sort_by", "outcome"}),
		resultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "venue_query_result_size",
			Help:      "Number of venues matching a listing query before paging.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_venues",
			Help:      "Venues in the cached catalog after the last refresh.",
		}),
		catalogRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_refreshes_total",
			Help:      "Catalog refresh runs by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.venueQueries,
		m.resultSize,
		m.catalogSize,
		m.catalogRefreshes,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveVenueQuery records one listing query and the number of venues it matched.
func (m *Metrics) ObserveVenueQuery(sortBy string, matched int) {
	if m == nil {
		return
	}
	outcome := OUTCOME_OK
	if matched == 0 {
		outcome = OUTCOME_NO_RESULTS
	}
	m.venueQueries.WithLabelValues(sortBy, outcome).Inc()
	m.resultSize.Observe(float64(matched))
}

func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogSize.Set(float64(n))
}

func (m *Metrics) ObserveRefresh(err error) {
	if m == nil {
		return
	}
	result := REFRESH_SUCCESS
	if err != nil {
		result = REFRESH_FAILURE
	}
	m.catalogRefreshes.WithLabelValues(result).Inc()
}
