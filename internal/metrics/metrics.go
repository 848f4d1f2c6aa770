package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vaccine_schema"

// Result labels.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics holds the validation collectors.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
	BatchRecords       *prometheus.HistogramVec
}

// New creates the collectors without registering them.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "records_total",
				Help:      "Total number of records validated",
			},
			[]string{"kind", "result"},
		),

		ValidationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "duration_seconds",
				Help:      "Validation request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		BatchRecords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "records",
				Help:      "Number of records per batch",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"kind"},
		),
	}
}

// RecordValidation increments the record counter
func (m *Metrics) RecordValidation(kind, result string) {
	m.ValidationsTotal.WithLabelValues(kind, result).Inc()
}

// RecordDuration records how long an operation took
func (m *Metrics) RecordDuration(operation string, d time.Duration) {
	m.ValidationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordBatchSize records the record count of a batch
func (m *Metrics) RecordBatchSize(kind string, records int) {
	m.BatchRecords.WithLabelValues(kind).Observe(float64(records))
}

// Registry owns a Prometheus registry with the validation collectors and the
// Go runtime collectors.
type Registry struct {
	registry *prometheus.Registry
	Metrics  *Metrics
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		Metrics:  New(),
	}

	r.registry.MustRegister(
		r.Metrics.ValidationsTotal,
		r.Metrics.ValidationDuration,
		r.Metrics.BatchRecords,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
