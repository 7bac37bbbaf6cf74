package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Operation status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics owns the numlab collectors and the registry they are exposed on.
type Metrics struct {
	registry    *prometheus.Registry
	gcdDuration *prometheus.HistogramVec
	operations  *prometheus.CounterVec
	fibTerms    prometheus.Counter
}

// New creates a Metrics with its own registry. The Go runtime collector is
// registered alongside the numlab collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		gcdDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numlab_gcd_duration_seconds",
			Help:    "Time spent folding a list of integers with a GCD algorithm.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"algorithm"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numlab_operations_total",
			Help: "Operations executed, by operation and outcome.",
		}, []string{"operation", "status"}),
		fibTerms: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "numlab_fibonacci_terms_total",
			Help: "Fibonacci terms generated.",
		}),
	}
	m.registry.MustRegister(
		m.gcdDuration,
		m.operations,
		m.fibTerms,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGCD records the elapsed time of one GCD fold.
func (m *Metrics) ObserveGCD(algorithm string, elapsed time.Duration) {
	m.gcdDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// RecordOperation counts one execution of operation, labelled by whether
// err is nil.
func (m *Metrics) RecordOperation(operation string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.operations.WithLabelValues(operation, status).Inc()
}

// AddFibonacciTerms counts n generated terms.
func (m *Metrics) AddFibonacciTerms(n int) {
	if n > 0 {
		m.fibTerms.Add(float64(n))
	}
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
