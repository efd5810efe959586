// Package telemetry owns the Prometheus registry of a pagetracker process.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ryhazerus/pagetracker/store"
)

// Metrics subsystems.
const (
	subsystemHTTP  = "http"
	subsystemStore = "store"
)

// Metrics holds the process's collectors and the registry serving them.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	storeOps     *prometheus.CounterVec
	storeErrs    *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
}

// New creates the collectors under namespace and registers them, together
// with the Go runtime and process collectors, on a private registry.
func New(namespace string) *Metrics {
	storeLabels := []string{store.LabelBackend, store.LabelOp}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemHTTP,
			Name:      "requests_total",
			Help:      "Number of HTTP requests served, by status code and method",
		}, []string{"code", "method"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemStore,
			Name:      "ops_total",
			Help:      "Number of successful counter store operations",
		}, storeLabels),
		storeErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemStore,
			Name:      "errors_total",
			Help:      "Number of failed counter store operations",
		}, storeLabels),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemStore,
			Name:      "op_latency_seconds",
			Help:      "Distribution of counter store op duration in seconds",
		}, storeLabels),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.storeOps,
		m.storeErrs,
		m.storeLatency,
	)

	return m
}

// InstrumentHandler counts every response of h by status code and method.
func (m *Metrics) InstrumentHandler(h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.requests, h)
}

// InstrumentStore records operation counts, errors and latency for s.
func (m *Metrics) InstrumentStore(s store.Store, backend string) store.Store {
	return store.Instrument(s, backend, m.storeOps, m.storeErrs, m.storeLatency)
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
