package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService holds the Prometheus collectors of the stub gateway. A nil
// service records nothing.
type MetricsService struct {
	registry *prometheus.Registry
	latency  *prometheus.HistogramVec
	served   *prometheus.CounterVec
	logins   *prometheus.CounterVec
	writes   *prometheus.CounterVec
}

// NewMetricsService registers the gateway collectors on a private registry
// alongside the Go runtime collector.
func NewMetricsService() *MetricsService {
	httpLabels := []string{"method", "path", "status"}
	m := &MetricsService{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent serving gateway requests.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		}, httpLabels),
		served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Gateway requests served, by route template and status.",
		}, httpLabels),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stub_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stub_writes_total",
			Help: "Successful record writes by entity and operation.",
		}, []string{"entity", "op"}),
	}
	m.registry.MustRegister(
		m.latency, m.served, m.logins, m.writes,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsService) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.latency.WithLabelValues(method, route, code).Observe(duration.Seconds())
	m.served.WithLabelValues(method, route, code).Inc()
}

func (m *MetricsService) ObserveLogin(ok bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// ObserveWrite counts a successful create, update or delete.
func (m *MetricsService) ObserveWrite(entity, op string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(entity, op).Inc()
}
