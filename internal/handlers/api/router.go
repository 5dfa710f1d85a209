// Package api exposes the condition monitor over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter returns the HTTP handler serving the monitoring endpoints.
func NewRouter(monitor conditionwatch.Service) http.Handler {
	h := &handler{monitor: monitor}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withRequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/v1/escrows/{escrow_id}/monitor", func(api chi.Router) {
		api.Post("/", h.startMonitoring)
		api.Delete("/", h.stopMonitoring)
		api.Get("/", h.getStatus)
	})

	return r
}

// NewServer returns an HTTP server listening on addr with the monitoring routes.
func NewServer(addr string, monitor conditionwatch.Service) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(monitor),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
