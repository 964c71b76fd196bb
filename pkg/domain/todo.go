package domain

import (
	"time"

	"github.com/google/uuid"
)

// TodoID uniquely identifies a to-do item.
// It wraps uuid.UUID to provide type safety at the domain layer.
type TodoID uuid.UUID

// String returns the canonical UUID representation.
func (id TodoID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so IDs serialize as UUID
// strings in JSON payloads.
func (id TodoID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TodoID) UnmarshalText(data []byte) error {
	u := (*uuid.UUID)(id)

	return u.UnmarshalText(data) //nolint: wrapcheck
}

// Todo represents a single to-do item owned by a user. Items are soft-deleted
// and may carry an optional due date; the reminder worker flips Overdue once
// the due date passes without the item being resolved.
type Todo struct {
	// ID is the unique identifier of the item.
	ID TodoID `json:"id"`
	// UserID is the identifier of the owning user.
	UserID UserID `json:"userId"`

	// Title is the free-form task description.
	Title string `json:"title"`
	// Resolved reports whether the task has been completed.
	Resolved bool `json:"resolved"`
	// Overdue is set by the reminder worker when DueDate passes while the item
	// is still unresolved.
	Overdue bool `json:"overdue"`

	// DueDate is when the task should be done; zero value means no due date.
	DueDate time.Time `json:"dueDate,omitempty"`

	// CreatedAt is the time the item was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the item was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the item was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
