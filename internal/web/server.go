// Package web serves the gallery as an HTML page and a JSON view.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gorilla/mux"
	"github.com/inovacc/repogallery/internal/loader"
	"github.com/inovacc/repogallery/internal/logging"
	"github.com/inovacc/repogallery/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds the web server configuration
type Config struct {
	Addr  string
	Owner string
}

// DefaultConfig returns the default web server configuration
func DefaultConfig() Config {
	return Config{
		Addr: "127.0.0.1:8080",
	}
}

// Server is the HTTP shell: one gallery session per process
type Server struct {
	config    Config
	source    loader.Source
	logger    *slog.Logger
	templates map[string]*template.Template
	cache     *ristretto.Cache[string, []model.Repository]
	router    *mux.Router

	session session
	baseCtx context.Context
	stop    context.CancelFunc
	loads   sync.WaitGroup
}

// New creates a server for cfg.Owner backed by src. Call Start to begin
// loading and Close to release it.
func New(cfg Config, src loader.Source, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []model.Repository]{
		NumCounters: 1e4,     // distinct filters tracked
		MaxCost:     1 << 18, // repositories held across all cached views
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	baseCtx, stop := context.WithCancel(context.Background())

	s := &Server{
		config:    cfg,
		source:    src,
		logger:    logger,
		templates: tmpl,
		cache:     cache,
		baseCtx:   baseCtx,
		stop:      stop,
	}
	s.session.owner = cfg.Owner

	s.router = mux.NewRouter()
	s.setupRoutes(s.router)

	return s, nil
}

// templateFuncMap returns the common template functions
func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "Never"
			}

			return t.Format("Jan 02, 2006 15:04")
		},
	}
}

// parseTemplates parses all embedded HTML templates
// Each page gets its own template instance to avoid content block conflicts
func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	funcMap := templateFuncMap()

	pageTemplates := []string{
		"loading.html",
		"error.html",
		"gallery.html",
	}

	for _, page := range pageTemplates {
		tmpl := template.New("").Funcs(funcMap)

		tmpl, err := tmpl.ParseFS(templatesFS, "templates/layout.html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout: %w", err)
		}

		tmpl, err = tmpl.ParseFS(templatesFS, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}

		templates[page] = tmpl
	}

	return templates, nil
}

// Handler returns the routed handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start enters the loading phase and fetches the repositories in the background.
func (s *Server) Start() {
	s.reload()
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("web server starting", slog.String("url", "http://"+listener.Addr().String()))

	errCh := make(chan error, 1)

	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:contextcheck // parent context cancelled
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	<-errCh

	return nil
}

// Close cancels any running load, waits for it, and releases the cache.
func (s *Server) Close() {
	s.stop()
	s.loads.Wait()
	s.cache.Close()
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}

// render renders a page template inside the layout
func (s *Server) render(w http.ResponseWriter, status int, templateName string, data any) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		s.logger.Error("template not found", slog.String("template", templateName))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		s.logger.Error("template error", slog.String("template", templateName), slog.String("error", err.Error()))
	}
}
