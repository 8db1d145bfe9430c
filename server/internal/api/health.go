package api

import (
	"net/http"
	"time"

	"github.com/audiolux/audiolux/server/internal/api/respond"
)

// HealthHandler reports the cached service health.
type HealthHandler struct {
	isHealthy  func() bool
	components func() map[string]bool
}

// NewHealthHandler binds the handler to a health source. A nil components
// func omits the per-component breakdown.
func NewHealthHandler(isHealthy func() bool, components func() map[string]bool) *HealthHandler {
	return &HealthHandler{isHealthy: isHealthy, components: components}
}

// CheckHealth handles GET /api/health
// Always returns 200; body reports healthy/unhealthy. 500 indicates handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.isHealthy() {
		status = "healthy"
	}
	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if h.components != nil {
		response["components"] = h.components()
	}
	respond.WriteJSON(w, http.StatusOK, response)
}
