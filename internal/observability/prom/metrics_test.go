package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry("urlfetch_test", prometheus.NewRegistry())
}

func TestMetrics_RecordSuccess(t *testing.T) {
	m := newTestMetrics()

	m.RecordSuccess("fetch_url")
	m.RecordSuccess("fetch_url")

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.processedTotal.WithLabelValues("success", "fetch_url")))
}

func TestMetrics_RecordError(t *testing.T) {
	m := newTestMetrics()

	m.RecordError("fetch_url", "DOWNLOAD_FAILED")

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.processedTotal.WithLabelValues("error", "fetch_url")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.errorsTotal.WithLabelValues("DOWNLOAD_FAILED", "fetch_url")))
}

func TestMetrics_InProgressGauge(t *testing.T) {
	m := newTestMetrics()

	m.StartOperation("fetch_url")
	m.StartOperation("fetch_url")
	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.inProgress.WithLabelValues("fetch_url")))

	m.EndOperation("fetch_url")
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.inProgress.WithLabelValues("fetch_url")))
}

func TestMetrics_Histograms(t *testing.T) {
	m := newTestMetrics()

	m.RecordDuration("fetch_url", 0.25)
	m.RecordFileSize("pdf", 469704)

	assert.Equal(t, 1, testutil.CollectAndCount(m.durationSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(m.fileSizeBytes))
}
