package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments gateway calls and lookup cache usage. A nil *Metrics
// records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	retries         *prometheus.CounterVec
	lookups         *prometheus.CounterVec
}

// NewMetrics registers the client collectors on a private registry.
func NewMetrics() *Metrics {
	callLabels := []string{"method", "resource", "status"}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of gateway calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, callLabels),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "requests_total",
			Help:      "Gateway call attempts by resource and status.",
		}, callLabels),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "retries_total",
			Help:      "Gateway calls repeated after a transient failure.",
		}, []string{"method", "resource"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lookup",
			Name:      "cache_requests_total",
			Help:      "Lookup list reads by cache result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.requestDuration, m.requestTotal, m.retries, m.lookups)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest records one attempt. Status 0 means no response arrived.
func (m *Metrics) ObserveRequest(method, resource string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestDuration.WithLabelValues(method, resource, label).Observe(d.Seconds())
	m.requestTotal.WithLabelValues(method, resource, label).Inc()
}

func (m *Metrics) ObserveRetry(method, resource string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method, resource).Inc()
}

// CacheHit records a lookup served from cache.
func (m *Metrics) CacheHit() { m.observeLookup("hit") }

// CacheMiss records a lookup that went to the gateway.
func (m *Metrics) CacheMiss() { m.observeLookup("miss") }

func (m *Metrics) observeLookup(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}
