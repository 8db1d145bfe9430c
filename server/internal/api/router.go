package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/audiolux/audiolux/server/internal/api/middleware"
	"github.com/audiolux/audiolux/server/internal/api/recovery"
	"github.com/audiolux/audiolux/server/internal/api/respond"
	"github.com/audiolux/audiolux/server/internal/store"
)

// RouterConfig carries what NewRouter needs besides the store.
type RouterConfig struct {
	AllowedOrigins []string
	Health         *HealthHandler
	Log            zerolog.Logger
}

// NewRouter wires the device routes, health and metrics behind the common
// middleware chain.
func NewRouter(st store.Store, cfg RouterConfig) (http.Handler, error) {
	root := mux.NewRouter()
	root.Use(middleware.RequestID)
	root.Use(recovery.Middleware(cfg.Log))
	root.Use(middleware.Observe(cfg.Log))

	device := NewDeviceHandler(st, cfg.Log)
	root.HandleFunc("/api/settings", device.GetSettings).Methods(http.MethodGet)
	root.HandleFunc("/api/settings", device.PutSettings).Methods(http.MethodPut)
	root.HandleFunc("/api/patterns", device.ListPatterns).Methods(http.MethodGet)
	root.HandleFunc("/api/pattern", device.GetPattern).Methods(http.MethodGet)
	// Browser clients send PUT to the trailing-slash form.
	root.HandleFunc("/api/pattern", device.PutPattern).Methods(http.MethodPut)
	root.HandleFunc("/api/pattern/", device.PutPattern).Methods(http.MethodPut)
	root.HandleFunc("/api/history", device.GetHistory).Methods(http.MethodGet)

	health := cfg.Health
	if health == nil {
		health = NewHealthHandler(func() bool { return true }, nil)
	}
	root.HandleFunc("/api/health", health.CheckHealth).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusNotFound, "Not Found")
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	corsWrap, err := middleware.NewCORS(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}
	// CORS sits outside the router so preflights never hit method matching.
	return corsWrap(root), nil
}
