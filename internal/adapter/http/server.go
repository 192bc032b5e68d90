package http

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/pipeline"
)

// Evaluator runs risk evaluations and describes the form that feeds them.
type Evaluator interface {
	CheckReadiness(ctx context.Context) error
	Evaluate(ctx context.Context, sel domain.Selections) (pipeline.Evaluation, error)
	Fields() ([]domain.FieldView, error)
}

// Server exposes the assessment form, the JSON API, and health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  Evaluator
	page       *template.Template
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the form, API, /healthz, /readyz,
// and /metrics routes.
func NewServer(addr string, evaluator Evaluator, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		evaluator: evaluator,
		page:      pageTemplate,
		logger:    logger,
	}

	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /assess", s.handleFormSubmit)
	mux.HandleFunc("GET /api/v1/fields", s.handleFields)
	mux.HandleFunc("POST /api/v1/assessments", s.handleAssess)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(evaluator))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}
