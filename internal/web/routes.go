package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(r *mux.Router) {
	r.Use(s.loggingMiddleware)

	// Pages
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/retry", s.handleRetry).Methods(http.MethodPost)

	// API
	r.HandleFunc("/api/repos", s.handleRepos).Methods(http.MethodGet)

	// System
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}
