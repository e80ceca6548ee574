package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the analysis collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	analyses *prometheus.CounterVec
	duration prometheus.Histogram
	students prometheus.Histogram
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notaspasa",
			Name:      "analyses_total",
			Help:      "Workbook analyses by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "notaspasa",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent decoding and analyzing a workbook.",
			Buckets:   prometheus.DefBuckets,
		}),
		students: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "notaspasa",
			Name:      "analysis_students",
			Help:      "Distinct students found per analyzed workbook.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500},
		}),
	}
	m.registry.MustRegister(m.analyses, m.duration, m.students)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(outcome string, elapsed time.Duration, students int) {
	m.analyses.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	if outcome == outcomeOK {
		m.students.Observe(float64(students))
	}
}
