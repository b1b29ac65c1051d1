package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus counters and histograms for the facility
// pipeline and its HTTP surface.
type Metrics struct {
	DatasetLoads    prometheus.Counter
	RowsRead        prometheus.Counter
	FacilitiesBuilt prometheus.Counter
	LoadDuration    prometheus.Histogram

	HTTPRequests   *prometheus.CounterVec // labels: route, status
	ExportDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetLoads,
		m.RowsRead,
		m.FacilitiesBuilt,
		m.LoadDuration,
		m.HTTPRequests,
		m.ExportDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facilitystats",
			Name:      "dataset_loads_total",
			Help:      "Total dataset pipeline runs.",
		}),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facilitystats",
			Name:      "rows_read_total",
			Help:      "Total CSV data rows tokenized.",
		}),
		FacilitiesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "facilitystats",
			Name:      "facilities_built_total",
			Help:      "Total facility records built from rows.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "facilitystats",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete parse-build-analyze run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facilitystats",
			Name:      "http_requests_total",
			Help:      "API requests by route and status.",
		}, []string{"route", "status"}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "facilitystats",
			Name:      "export_duration_seconds",
			Help:      "Duration of workbook/parquet export generation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
