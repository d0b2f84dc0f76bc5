// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adrata/monaco/internal/domain/model"
)

// ComposeDependencies defines the interface for synchronous composition.
type ComposeDependencies interface {
	Compose(ctx context.Context, req model.CompositionRequest) (model.CompositionResult, error)
}

// ComposeHandler handles synchronous composition requests.
type ComposeHandler struct {
	deps          ComposeDependencies
	maxRosterSize int
}

// NewComposeHandler creates a new compose handler.
func NewComposeHandler(deps ComposeDependencies, maxRosterSize int) *ComposeHandler {
	return &ComposeHandler{deps: deps, maxRosterSize: maxRosterSize}
}

// HandleCompose handles POST /compose requests.
func (h *ComposeHandler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	const op = "api.compose"
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

	result, err := h.deps.Compose(r.Context(), req.CompositionRequest)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
