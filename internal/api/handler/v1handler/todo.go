package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
	"toolserver/pkg/domain"
	"toolserver/pkg/serrors"

	"github.com/google/uuid"
)

const DefaultLimit = 20

// CreateTodoRequest is the JSON payload for POST /v1/todos.
type CreateTodoRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// TodoList is the JSON response for GET /v1/todos.
type TodoList struct {
	Items      []domain.Todo `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// CreateTodo creates a new to-do item for the authenticated user.
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	var dueDate time.Time
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	item, err := h.deps.Todo.Create(ctx, GetUserIDFromContext(ctx), req.Title, dueDate)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, item)
}

// ListTodos returns a paginated list of the authenticated user's items.
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	items, nextCursor, err := h.deps.Todo.List(ctx, GetUserIDFromContext(ctx), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if items == nil {
		items = []domain.Todo{}
	}

	writeJSON(ctx, w, http.StatusOK, TodoList{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// ToggleTodo flips the resolved flag on an item.
func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid todo ID"))

		return
	}

	item, err := h.deps.Todo.Toggle(ctx, GetUserIDFromContext(ctx), domain.TodoID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, item)
}

// DeleteTodo soft-deletes an item.
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid todo ID"))

		return
	}

	if err := h.deps.Todo.Delete(ctx, GetUserIDFromContext(ctx), domain.TodoID(id)); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
