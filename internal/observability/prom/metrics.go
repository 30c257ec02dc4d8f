// Package prom implements observability.Metrics using the Prometheus
// client library. Metric names follow Prometheus conventions with the
// service name as prefix.
package prom

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements observability.Metrics with pre-configured Prometheus
// collectors for processed operations, errors, durations, file sizes and
// in-flight operations.
type Metrics struct {
	processedTotal  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
	fileSizeBytes   *prometheus.HistogramVec
	inProgress      *prometheus.GaugeVec
}

// New creates Prometheus-backed metrics registered with the default
// registry. Panics on duplicate registration, so call it once per process.
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates Prometheus-backed metrics registered with the
// given registerer. Tests use this with a private registry.
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.processedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_processed_total", serviceName),
			Help: fmt.Sprintf("Total processed operations by %s", serviceName),
		},
		[]string{"status", "operation"},
	)

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_errors_total", serviceName),
			Help: fmt.Sprintf("Total errors in %s", serviceName),
		},
		[]string{"error_type", "operation"},
	)

	m.durationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_duration_seconds", serviceName),
			Help:    fmt.Sprintf("Operation duration in %s", serviceName),
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Buckets from 1KB up to 1GB, suitable for downloaded files.
	m.fileSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: fmt.Sprintf("%s_file_size_bytes", serviceName),
			Help: fmt.Sprintf("File sizes transferred by %s", serviceName),
			Buckets: []float64{
				1024,
				10240,
				102400,
				1048576,
				10485760,
				104857600,
				1073741824,
			},
		},
		[]string{"file_type"},
	)

	m.inProgress = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_in_progress", serviceName),
			Help: fmt.Sprintf("Operations in progress in %s", serviceName),
		},
		[]string{"operation"},
	)

	reg.MustRegister(
		m.processedTotal,
		m.errorsTotal,
		m.durationSeconds,
		m.fileSizeBytes,
		m.inProgress,
	)

	return m
}

func (m *Metrics) RecordSuccess(operation string) {
	m.processedTotal.WithLabelValues("success", operation).Inc()
}

// RecordError increments both the processed counter (status=error) and the
// detailed error counter, giving high-level failure rates plus per-type
// breakdowns.
func (m *Metrics) RecordError(operation, errorType string) {
	m.processedTotal.WithLabelValues("error", operation).Inc()
	m.errorsTotal.WithLabelValues(errorType, operation).Inc()
}

func (m *Metrics) RecordDuration(operation string, seconds float64) {
	m.durationSeconds.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) RecordFileSize(fileType string, bytes int64) {
	m.fileSizeBytes.WithLabelValues(fileType).Observe(float64(bytes))
}

func (m *Metrics) StartOperation(operation string) {
	m.inProgress.WithLabelValues(operation).Inc()
}

func (m *Metrics) EndOperation(operation string) {
	m.inProgress.WithLabelValues(operation).Dec()
}
