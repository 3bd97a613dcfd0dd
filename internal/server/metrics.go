package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bigcalc_http_active_requests",
		Help: "Requests currently being served by the metrics endpoint.",
	})
	totalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bigcalc_http_requests_total",
		Help: "Requests received by the metrics endpoint, by path.",
	}, []string{"path"})
)

// Metrics serves the default Prometheus registry, which holds the
// arithmetic and evaluation collectors.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates the /metrics handler.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// ServeHTTP writes the metrics in the Prometheus text format.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// metricsMiddleware tracks in-flight and total requests.
func metricsMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeRequests.Inc()
		totalRequests.WithLabelValues(path).Inc()
		defer activeRequests.Dec()
		next(w, r)
	}
}
