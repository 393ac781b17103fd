// Package server exposes the resolution engine over HTTP: a resolve
// endpoint plus read-only views of the catalog's declared structure.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/packpath/packpath/internal/config"
)

// Server wires the HTTP handlers to a config manager. The manager owns
// the current catalog snapshot; handlers read it per request so a reload
// takes effect without a restart.
type Server struct {
	manager *config.Manager
	mux     *http.ServeMux
}

// New builds a Server around an initialized config manager.
func New(manager *config.Manager) *Server {
	s := &Server{
		manager: manager,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/resolve", s.handleResolve)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/structure", s.handleStructure)
	s.mux.HandleFunc("GET /api/paths", s.handlePaths)
	s.mux.HandleFunc("POST /api/reload", s.handleReload)
}

// ServeHTTP implements http.Handler with request logging and panic
// recovery around the route table.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("handler panic", "panic", rec, "method", r.Method, "path", r.URL.Path)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration", time.Since(start).String(),
		)
	}()

	s.mux.ServeHTTP(wrapped, r)
}

// ListenAndServe runs the server on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("serving", "addr", fmt.Sprintf("http://%s", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusWriter captures the status code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
