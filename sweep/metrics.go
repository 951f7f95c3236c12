package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors updated by a Driver.
// All methods are nil-safe, so a Driver may run without metrics.
type Metrics struct {
	samples      *prometheus.CounterVec
	iterations   prometheus.Histogram
	attempts     prometheus.Counter
	temperatures prometheus.Counter
}

// NewMetrics registers the sweep collectors on reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		samples: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proppwilson",
			Name:      "samples_total",
			Help:      "Samples attempted, by outcome (ok or ng).",
		}, []string{"outcome"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "proppwilson",
			Name:      "doublings",
			Help:      "Window doublings needed by coalesced samples.",
			Buckets:   prometheus.LinearBuckets(0, 1, 31),
		}),
		attempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "proppwilson",
			Name:      "attempts_total",
			Help:      "Replays of the update log across all samples.",
		}),
		temperatures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "proppwilson",
			Name:      "temperatures_total",
			Help:      "Temperatures fully sampled.",
		}),
	}
}

func (m *Metrics) observeSample(ok bool, iterations int) {
	if m == nil {
		return
	}
	if !ok {
		m.samples.WithLabelValues("ng").Inc()
		return
	}
	m.samples.WithLabelValues("ok").Inc()
	m.iterations.Observe(float64(iterations))
}

func (m *Metrics) observeAttempt() {
	if m == nil {
		return
	}
	m.attempts.Inc()
}

func (m *Metrics) observeTemperature() {
	if m == nil {
		return
	}
	m.temperatures.Inc()
}
