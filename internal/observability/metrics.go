package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts import results. It satisfies importer.Recorder.
type Metrics struct {
	Rows     *prometheus.CounterVec
	Images   *prometheus.CounterVec
	Taxonomy *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_import_rows_total",
				Help: "Imported rows by outcome",
			},
			[]string{"outcome"},
		),
		Images: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_import_images_total",
				Help: "Product images by result",
			},
			[]string{"result"},
		),
		Taxonomy: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_import_taxonomy_created_total",
				Help: "Categories and brands created during import",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Rows, m.Images, m.Taxonomy)
}

func (m *Metrics) ObserveRow(status string) {
	m.Rows.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveImages(attached, failed int) {
	if attached > 0 {
		m.Images.WithLabelValues("attached").Add(float64(attached))
	}
	if failed > 0 {
		m.Images.WithLabelValues("failed").Add(float64(failed))
	}
}

func (m *Metrics) ObserveCreated(kind string) {
	m.Taxonomy.WithLabelValues(kind).Inc()
}

// Start registers m on the default registry and serves /metrics on port.
// An empty port only registers.
func Start(port string, m *Metrics) {
	m.MustRegister(prometheus.DefaultRegisterer)
	if port == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
