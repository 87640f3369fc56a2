// Package metrics exposes Prometheus instrumentation for the selection
// engine and its HTTP surface.
//
// All metrics use the "registry_" prefix. Methods handle a nil receiver, so a
// nil *Metrics is a no-op and services can be built without instrumentation
// in tests.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultEmpty = "empty"
)

type Metrics struct {
	// ResolutionsTotal counts selection resolutions.
	// Labels: kind=[explicit, FOLDER, SEARCH, COLLECTION, none], result=[ok, empty, error]
	ResolutionsTotal *prometheus.CounterVec

	// ResolutionDuration tracks the time to compute a working set.
	ResolutionDuration *prometheus.HistogramVec

	// FilterEvaluationsTotal counts evaluated filters by operator.
	FilterEvaluationsTotal *prometheus.CounterVec

	// ComplementsTotal counts BOOLEAN "false" filters evaluated as a
	// universe complement.
	ComplementsTotal prometheus.Counter

	// ShortCircuitsTotal counts filter pipelines stopped by an empty
	// intermediate result.
	ShortCircuitsTotal prometheus.Counter

	// SearchRequestsTotal counts calls to the search subsystem by result.
	SearchRequestsTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts served requests by route, method and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration tracks request latency by route.
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them with registerer.
// If registerer is nil, prometheus.DefaultRegisterer is used.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registry_selection_resolutions_total",
				Help: "Total selection resolutions by selection kind and result",
			},
			[]string{"kind", "result"},
		),
		ResolutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "registry_selection_resolution_duration_seconds",
				Help:    "Time to resolve a selection into a working set",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		FilterEvaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registry_filter_evaluations_total",
				Help: "Total evaluated filters by operator",
			},
			[]string{"operator"},
		),
		ComplementsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "registry_filter_complements_total",
				Help: "Total negative boolean filters evaluated as a universe complement",
			},
		),
		ShortCircuitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "registry_filter_short_circuits_total",
				Help: "Total filter pipelines stopped by an empty intermediate result",
			},
		),
		SearchRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registry_search_requests_total",
				Help: "Total requests to the search subsystem by result",
			},
			[]string{"result"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registry_http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "registry_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	registerer.MustRegister(
		m.ResolutionsTotal,
		m.ResolutionDuration,
		m.FilterEvaluationsTotal,
		m.ComplementsTotal,
		m.ShortCircuitsTotal,
		m.SearchRequestsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// ObserveResolution records a working set computation.
func (m *Metrics) ObserveResolution(kind string, size int, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.ResolutionDuration.WithLabelValues(kind).Observe(duration.Seconds())
	m.ResolutionsTotal.WithLabelValues(kind, result(size, err)).Inc()
}

func (m *Metrics) ObserveFilter(operator string) {
	if m == nil {
		return
	}
	m.FilterEvaluationsTotal.WithLabelValues(operator).Inc()
}

func (m *Metrics) ObserveComplement() {
	if m == nil {
		return
	}
	m.ComplementsTotal.Inc()
}

func (m *Metrics) ObserveShortCircuit() {
	if m == nil {
		return
	}
	m.ShortCircuitsTotal.Inc()
}

func (m *Metrics) ObserveSearch(size int, err error) {
	if m == nil {
		return
	}
	m.SearchRequestsTotal.WithLabelValues(result(size, err)).Inc()
}

// ObserveHTTP records a served request. route is the chi route pattern, not
// the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func result(size int, err error) string {
	switch {
	case err != nil:
		return ResultError
	case size == 0:
		return ResultEmpty
	default:
		return ResultOK
	}
}
