package observability

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.MustRegister(prometheus.NewRegistry())

	m.ObserveRow("created")
	m.ObserveRow("created")
	m.ObserveRow("skipped")
	m.ObserveImages(2, 1)
	m.ObserveImages(0, 0)
	m.ObserveCreated("brand")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Rows.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rows.WithLabelValues("skipped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Images.WithLabelValues("attached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Images.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Taxonomy.WithLabelValues("brand")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Taxonomy.WithLabelValues("category")))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "row", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "row=3")
}
