// Package v1handler implements the v1 REST handlers for the to-do API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"toolserver/internal/todo"
	"toolserver/pkg/logger"
	"toolserver/pkg/serrors"

	"go.uber.org/zap"
)

// Deps groups the services the handlers depend on.
type Deps struct {
	// Todo is the to-do service backing the v1 endpoints.
	Todo todo.Service
}

// Handler serves the v1 to-do endpoints.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches the v1 routes to mux. The caller is responsible for
// wrapping mux with the security middleware.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/todos", h.CreateTodo)
	mux.HandleFunc("GET /v1/todos", h.ListTodos)
	mux.HandleFunc("POST /v1/todos/{id}/toggle", h.ToggleTodo)
	mux.HandleFunc("DELETE /v1/todos/{id}", h.DeleteTodo)
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// writeError maps semantic error kinds to HTTP statuses. Unclassified errors
// become 500 with a generic body so internals never leak to clients.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	var se *serrors.Error
	if errors.As(err, &se) {
		switch {
		case errors.Is(se, serrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(se, serrors.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(se, serrors.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(se, serrors.ErrBadRequest):
			status = http.StatusBadRequest
		case errors.Is(se, serrors.ErrTimeout):
			status = http.StatusGatewayTimeout
		}
		if status != http.StatusInternalServerError {
			msg = se.Message()
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	writeJSON(ctx, w, status, errorResponse{Error: msg})
}
