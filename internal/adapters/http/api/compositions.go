// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/adrata/monaco/internal/domain/dedupe"
	"github.com/adrata/monaco/internal/domain/model"
)

// CompositionDependencies defines the interface for async composition
// submission and lookup.
type CompositionDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, job model.Job) bool
	Result(ctx context.Context, jobID string) (model.CompositionResult, error)
}

// CompositionsHandler handles async composition requests.
type CompositionsHandler struct {
	deps          CompositionDependencies
	maxRosterSize int
}

// NewCompositionsHandler creates a new compositions handler.
func NewCompositionsHandler(deps CompositionDependencies, maxRosterSize int) *CompositionsHandler {
	return &CompositionsHandler{deps: deps, maxRosterSize: maxRosterSize}
}

// HandlePostComposition handles POST /compositions requests.
func (h *CompositionsHandler) HandlePostComposition(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_composition"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req compositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxRosterSize); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.RequestID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", JobID: req.RequestID, Duplicate: true})
		return
	}

	job := model.Job{JobID: req.RequestID, Request: req.CompositionRequest}

	// Try to enqueue for async processing
	if ok := h.deps.Enqueue(r.Context(), job); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), req.RequestID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", JobID: req.RequestID, Duplicate: false})
}

// HandleGetComposition handles GET /compositions/{job_id} requests.
func (h *CompositionsHandler) HandleGetComposition(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_composition"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /compositions/
	path := strings.TrimPrefix(r.URL.Path, "/compositions/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	result, err := h.deps.Result(r.Context(), path)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
