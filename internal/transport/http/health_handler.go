package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"combinecli/internal/services"
)

// HealthHandler handles the service identity and health probe requests
type HealthHandler struct {
	service *services.HealthService
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *services.HealthService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
	}
}

// Identity handles GET /
func (h *HealthHandler) Identity(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Identity(r.Context()))
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.HealthCheck(r.Context()))
}
