// Package metrics exposes store sizes and operation counts to Prometheus.
package metrics

import (
	"net/http"

	"github.com/aevon-lab/remindex/internal/reminder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "remindex"

const (
	resultSuccess  = "success"
	resultRejected = "rejected"
)

// StatsSource reports the current structure sizes.
type StatsSource interface {
	Stats() reminder.Stats
}

// StatsFunc adapts a function to StatsSource.
type StatsFunc func() reminder.Stats

func (f StatsFunc) Stats() reminder.Stats { return f() }

// Metrics owns a private registry with the store collector and the
// operation counter. It implements reminder.Observer.
type Metrics struct {
	registry *prometheus.Registry

	// OperationsTotal counts store operations.
	// Labels: operation (add, complete, remove, undo, process), result (success, rejected)
	OperationsTotal *prometheus.CounterVec
}

// New registers the store collector for source plus Go runtime collectors.
func New(source StatsSource) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		newStoreCollector(source),
	)

	return &Metrics{
		registry: reg,
		OperationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Store operations by outcome",
		}, []string{"operation", "result"}),
	}
}

func (m *Metrics) ObserveOperation(operation string, ok bool) {
	result := resultSuccess
	if !ok {
		result = resultRejected
	}
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

var _ reminder.Observer = (*Metrics)(nil)
