// Package api serves the scraped parliament data as JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/observability"
	"github.com/IshaanNene/ParlScrape/internal/scraper"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Scraper is the data source behind the API.
type Scraper interface {
	Home(ctx context.Context) (scraper.Result[types.HomeLinks], error)
	News(ctx context.Context, q scraper.NewsQuery) (scraper.Result[scraper.NewsList], error)
	Bills(ctx context.Context, page int) (scraper.Result[types.BillsPage], error)
	Members(ctx context.Context, f scraper.MemberFilter) (scraper.Result[types.MembersPage], error)
}

// Server provides the REST API.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	scraper Scraper
	metrics *observability.Metrics
	http    *http.Server
	logger  *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, s Scraper, metrics *observability.Metrics, logger *slog.Logger) *Server {
	srv := &Server{
		router:  chi.NewRouter(),
		cfg:     cfg,
		scraper: s,
		metrics: metrics,
		logger:  logger.With("component", "api_server"),
	}
	srv.registerRoutes()
	return srv
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) registerRoutes() {
	s.router.Use(
		Recover(s.logger),
		RequestID(),
		Logging(s.logger, s.metrics),
		CORS(),
		Timeout(s.cfg.Server.RequestTimeout),
	)

	s.router.Get("/api/health", s.handleHealth)
	if s.cfg.Metrics.Enabled && s.metrics != nil {
		s.router.Method(http.MethodGet, s.cfg.Metrics.Path, s.metrics)
	}

	s.router.Route("/api/parliament", func(r chi.Router) {
		r.Get("/home", s.handleHome)
		r.Get("/news", s.handleNews)
		r.Get("/bills", s.handleBills)
		r.Get("/members", s.handleMembers)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server starting", "addr", addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.logger.Info("API server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// envelope is the body of every API response.
type envelope struct {
	Success bool           `json:"success"`
	Source  scraper.Source `json:"source,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Data    any            `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func writeResult[T any](w http.ResponseWriter, res scraper.Result[T]) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Source:  res.Source,
		Warning: res.Reason,
		Data:    res.Data,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
