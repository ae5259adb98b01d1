// Package metrics defines the Prometheus collectors exported by the forge
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names
const (
	MetricNameItemsBuilt          = "itemforge_items_built_total"
	MetricNameBuildFailures       = "itemforge_build_failures_total"
	MetricNameTemplateWrites      = "itemforge_template_writes_total"
	MetricNameHTTPRequestsTotal   = "itemforge_http_requests_total"
	MetricNameHTTPRequestDuration = "itemforge_http_request_duration_seconds"
)

// Label names
const (
	LabelMaterial  = "material"
	LabelSource    = "source"
	LabelCode      = "code"
	LabelOperation = "operation"
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelStatus    = "status"
)

// Build sources
const (
	SourceTemplate = "template"
	SourceInline   = "inline"
)

// Metrics holds the forge's collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	ItemsBuilt          *prometheus.CounterVec
	BuildFailures       *prometheus.CounterVec
	TemplateWrites      *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ItemsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameItemsBuilt,
				Help: "Total number of item stacks built",
			},
			[]string{LabelMaterial, LabelSource},
		),
		BuildFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameBuildFailures,
				Help: "Total number of rejected item builds",
			},
			[]string{LabelCode},
		),
		TemplateWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameTemplateWrites,
				Help: "Total number of template create, update and delete calls that succeeded",
			},
			[]string{LabelOperation},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{LabelMethod, LabelRoute, LabelStatus},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameHTTPRequestDuration,
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{LabelMethod, LabelRoute},
		),
	}
}

// ItemBuilt records one built stack
func (m *Metrics) ItemBuilt(material, source string) {
	if m == nil {
		return
	}
	m.ItemsBuilt.WithLabelValues(material, source).Inc()
}

// BuildFailed records a rejected build by error code
func (m *Metrics) BuildFailed(code string) {
	if m == nil {
		return
	}
	m.BuildFailures.WithLabelValues(code).Inc()
}

// TemplateWritten records a successful template write
func (m *Metrics) TemplateWritten(operation string) {
	if m == nil {
		return
	}
	m.TemplateWrites.WithLabelValues(operation).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware collects HTTP request metrics. route names the request in
// labels so path parameters do not explode cardinality.
func (m *Metrics) Middleware(route func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			name := route(r)
			m.HTTPRequestsTotal.WithLabelValues(r.Method, name, strconv.Itoa(rw.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, name).Observe(time.Since(start).Seconds())
		})
	}
}
