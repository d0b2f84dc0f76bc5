// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adrata/monaco/internal/adapters/repository"
	"github.com/adrata/monaco/internal/domain/dedupe"
	"github.com/adrata/monaco/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Compose runs a full composition synchronously.
	Compose(ctx context.Context, req model.CompositionRequest) (model.CompositionResult, error)

	// Enqueue pushes a job for async processing. Returns false on backpressure.
	Enqueue(ctx context.Context, job model.Job) bool

	// Result returns the stored result for a completed job.
	Result(ctx context.Context, jobID string) (model.CompositionResult, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	composeHandler      *ComposeHandler
	compositionsHandler *CompositionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRosterSize int) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		composeHandler:      NewComposeHandler(deps, maxRosterSize),
		compositionsHandler: NewCompositionsHandler(deps, maxRosterSize),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/compose", MetricsMiddleware(s.composeHandler.HandleCompose, "compose"))
	mux.HandleFunc("/compositions", MetricsMiddleware(s.compositionsHandler.HandlePostComposition, "compositions"))
	mux.HandleFunc("/compositions/", MetricsMiddleware(s.compositionsHandler.HandleGetComposition, "composition"))
}

// compositionRequest mirrors the OpenAPI schema for composition submissions.
type compositionRequest struct {
	// RequestID is the idempotency key for async submissions. Optional;
	// a fresh id is generated when absent.
	RequestID string `json:"request_id,omitempty"`

	model.CompositionRequest
}

func (c compositionRequest) validate(maxRosterSize int) error {
	if strings.TrimSpace(c.CompanyName) == "" {
		return errors.New("missing company_name")
	}
	if len(c.Candidates) == 0 {
		return errors.New("missing candidates")
	}
	if len(c.Candidates) > maxRosterSize {
		return errors.New("too many candidates")
	}
	for i := range c.Candidates {
		if strings.TrimSpace(c.Candidates[i].ID) == "" {
			return errors.New("missing candidate id")
		}
		if strings.TrimSpace(c.Candidates[i].Title) == "" {
			return errors.New("missing candidate title")
		}
	}
	if c.Deal.DealSize < 0 || c.Deal.CompanyRevenue < 0 || c.Deal.CompanyEmployees < 0 {
		return errors.New("deal figures must not be negative")
	}
	return nil
}

type ackResponse struct {
	Status    string `json:"status"`
	JobID     string `json:"job_id,omitempty"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
