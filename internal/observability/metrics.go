package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/club-brackets/internal/platform/resilience"
)

const metricsNamespace = "club_brackets"

// Metrics owns a private Prometheus registry for the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	unknownStages       prometheus.Counter
	pairingFallbacks    *prometheus.CounterVec
	circuitState        *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		// Stage codes come from request bodies, so the counter carries no stage label.
		unknownStages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "bracket",
			Name:      "unknown_stage_total",
			Help:      "Stages without a known label seen while resolving brackets.",
		}),
		pairingFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "bracket",
			Name:      "pairing_fallback_total",
			Help:      "Position labels that used the index-derived group pairing.",
		}, []string{"stage"}),
		circuitState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "dependency",
			Name:      "circuit_state",
			Help:      "1 for the current circuit breaker state of each upstream dependency.",
		}, []string{"dependency", "state"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// TrackCircuit mirrors breaker transitions into the circuit_state gauge.
func (m *Metrics) TrackCircuit(dependency string, breaker *resilience.CircuitBreaker) {
	if m == nil || breaker == nil {
		return
	}
	m.setCircuitState(dependency, breaker.State())
	breaker.OnStateChange(func(_, to resilience.CircuitState) {
		m.setCircuitState(dependency, to)
	})
}

func (m *Metrics) setCircuitState(dependency string, current resilience.CircuitState) {
	for _, state := range []resilience.CircuitState{
		resilience.CircuitStateClosed,
		resilience.CircuitStateOpen,
		resilience.CircuitStateHalfOpen,
	} {
		value := 0.0
		if state == current {
			value = 1
		}
		m.circuitState.WithLabelValues(dependency, string(state)).Set(value)
	}
}
