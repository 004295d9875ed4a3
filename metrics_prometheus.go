package go_nano

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "nano"

// PrometheusWorkMetrics exports WorkMetrics as Prometheus collectors.
type PrometheusWorkMetrics struct {
	attempts prometheus.Counter
	results  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPrometheusWorkMetrics creates the collectors and registers them with
// reg. A nil reg skips registration.
func NewPrometheusWorkMetrics(reg prometheus.Registerer) (*PrometheusWorkMetrics, error) {
	m := &PrometheusWorkMetrics{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "work",
			Name:      "attempts_total",
			Help:      "Candidate nonces tested by work searches.",
		}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "work",
			Name:      "worker_results_total",
			Help:      "Work search workers by outcome.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "work",
			Name:      "worker_duration_seconds",
			Help:      "Time a single worker spent searching.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.attempts, m.results, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *PrometheusWorkMetrics) AddWorkAttempts(n uint64) {
	m.attempts.Add(float64(n))
}

func (m *PrometheusWorkMetrics) IncrementWorkFound() {
	m.results.WithLabelValues("found").Inc()
}

func (m *PrometheusWorkMetrics) IncrementWorkExhausted() {
	m.results.WithLabelValues("exhausted").Inc()
}

func (m *PrometheusWorkMetrics) IncrementWorkCancelled() {
	m.results.WithLabelValues("cancelled").Inc()
}

func (m *PrometheusWorkMetrics) RecordWorkDuration(duration time.Duration) {
	m.duration.Observe(duration.Seconds())
}
