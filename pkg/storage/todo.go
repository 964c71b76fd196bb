package storage

import (
	"context"
	"time"
	"toolserver/pkg/domain"
)

// TodoUpdates describes a set of optional fields that can be applied to an
// existing to-do item during an update. Only non-nil fields are changed.
type TodoUpdates struct {
	// Resolved, when provided, sets the resolved flag.
	Resolved *bool
	// Overdue, when provided, sets the overdue flag.
	Overdue *bool
	// Title, when provided, replaces the title.
	Title *string
}

// UserTodos groups a page of to-do items returned for a user together with an
// optional NextCursor used for pagination.
type UserTodos struct {
	// Todos contains the current page of items.
	Todos []domain.Todo
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// TodoStorage defines CRUD and query operations for to-do items. Deletes are
// soft: rows get a deleted_at timestamp and are excluded from every query.
type TodoStorage interface {
	// StoreTodos inserts one or more items and returns the stored rows as they
	// exist in the database (including generated fields).
	StoreTodos(ctx context.Context, todos ...domain.Todo) ([]domain.Todo, error)
	// UpdateTodoByID updates a single item owned by the given user and returns
	// the updated row, or nil when not found. updated_at is set automatically.
	UpdateTodoByID(ctx context.Context, userID domain.UserID, ID domain.TodoID, updates TodoUpdates) (*domain.Todo, error)
	// MarkOverdueIfUnresolved sets the overdue flag on the item when it is still
	// unresolved, regardless of owner. It returns the updated row, or nil when
	// the item does not exist, was deleted, or was already resolved.
	MarkOverdueIfUnresolved(ctx context.Context, ID domain.TodoID) (*domain.Todo, error)
	// DeleteTodo performs a soft delete for the given item and user and returns
	// the deleted row, or nil if it was not found.
	DeleteTodo(ctx context.Context, userID domain.UserID, ID domain.TodoID) (*domain.Todo, error)
	// UserTodos returns a page of items for a user created before the optional
	// cursor time, limited by limit. Results are ordered by creation time,
	// newest first.
	UserTodos(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserTodos, error)
	// TodoByID fetches an item by its ID for the given user, excluding
	// soft-deleted rows. Returns nil when not found.
	TodoByID(ctx context.Context, userID domain.UserID, ID domain.TodoID) (*domain.Todo, error)
}
