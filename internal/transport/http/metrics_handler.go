package http

import (
	"net/http"
)

// MetricsHandler serves the Prometheus metrics endpoint
type MetricsHandler struct {
	prometheus http.Handler
}

// NewMetricsHandler creates a metrics handler around the Prometheus
// registry handler produced by the OpenTelemetry exporter.
func NewMetricsHandler(prometheus http.Handler) *MetricsHandler {
	return &MetricsHandler{prometheus: prometheus}
}

// GetMetrics handles GET /metrics
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	if h.prometheus == nil {
		http.Error(w, "metrics not enabled", http.StatusNotFound)
		return
	}
	h.prometheus.ServeHTTP(w, r)
}
