// Package api serves SEO tags and site settings over HTTP for the frontend,
// with bearer-token protected writes.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
)

const shutdownTimeout = 10 * time.Second

// Server routes API requests to the store.
type Server struct {
	store     database.Repository
	siteURL   string
	tokenHash string
	loc       *time.Location
	log       *zap.Logger
	router    *mux.Router
}

// NewServer builds a Server from cfg. A nil logger discards output.
func NewServer(store database.Repository, cfg config.Config, log *zap.Logger) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store:     store,
		siteURL:   cfg.BaseURL(),
		tokenHash: cfg.API.AdminTokenHash,
		loc:       loc,
		log:       log,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	api := r.PathPrefix("/api/seo").Subrouter()

	// Literal paths first so they are not taken as page ids.
	api.HandleFunc("/", s.listTags).Methods(http.MethodGet)
	api.HandleFunc("/", s.admin(s.createTag)).Methods(http.MethodPost)
	api.HandleFunc("/full-seo/", s.fullSEO).Methods(http.MethodGet)
	api.HandleFunc("/advanced/", s.getAdvanced).Methods(http.MethodGet)
	api.HandleFunc("/advanced/", s.admin(s.updateAdvanced)).Methods(http.MethodPut, http.MethodPatch)

	api.HandleFunc("/{page_id}/", s.getTag).Methods(http.MethodGet)
	api.HandleFunc("/{page_id}/", s.admin(s.updateTag)).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/{page_id}/", s.admin(s.deleteTag)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", r.Method))
	})
	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx ends, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an already bound listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.log.Info("api listening", zap.String("addr", ln.Addr().String()))

	serveDone := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveDone <- err
	}()

	select {
	case <-ctx.Done():
		s.log.Info("api shutting down")
	case err := <-serveDone:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-serveDone
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
