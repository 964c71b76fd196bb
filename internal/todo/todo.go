package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"toolserver/internal/config"
	"toolserver/pkg/domain"
	"toolserver/pkg/serrors"
	"toolserver/pkg/storage"

	"github.com/google/uuid"
)

// Options configure how to-do items are created and how reminder jobs are
// enqueued. These settings are typically derived from application configuration.
type Options struct {
	// ReminderMaxAttempts is the maximum number of attempts the background worker
	// should make when processing a reminder job before giving up.
	ReminderMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReminderMaxAttempts: cfg.Todo.ReminderMaxAttempts,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer and reminder enqueueing.
type service struct {
	// options holds runtime configuration that affects creation and reminders.
	options Options
	// storage is the persistence layer used to store items and manage jobs.
	storage storage.Storage
}

// Create stores a new to-do item for the given user. When a due date is set,
// a reminder job is enqueued in the same transaction, scheduled for the due
// time; the item and its reminder therefore become visible atomically.
func (s service) Create(ctx context.Context,
	userID domain.UserID,
	title string,
	dueDate time.Time) (*domain.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title must not be empty")
	}

	var item *domain.Todo
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreTodos(ctx, domain.Todo{
			UserID:  userID,
			Title:   title,
			DueDate: dueDate,
		})
		if err != nil {
			return fmt.Errorf("could not store todo: %w", err)
		}
		item = &res[0]

		if !dueDate.IsZero() {
			if _, err := tx.AddJob(ctx, ReminderJobArgs{
				TodoID:      uuid.UUID(item.ID),
				maxAttempts: s.options.ReminderMaxAttempts,
				dueDate:     dueDate,
			}, nil); err != nil {
				return fmt.Errorf("could not add reminder job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create todo: %w", err)
	}

	return item, nil
}

// List returns a page of items for the given user. It supports cursor-based
// pagination using an RFC3339 timestamp string and returns the next cursor
// when more results are available.
func (s service) List(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Todo, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserTodos(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user todos: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Todos, next, nil
}

// Toggle flips the resolved flag on an item belonging to the given user. The
// read and the update run inside a transaction so concurrent toggles cannot
// lose each other's state. A not-found error is returned when no matching item
// exists.
func (s service) Toggle(ctx context.Context, userID domain.UserID, todoID domain.TodoID) (*domain.Todo, error) {
	var item *domain.Todo
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.TodoByID(ctx, userID, todoID)
		if err != nil {
			return fmt.Errorf("could not get todo: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "todo not found")
		}

		resolved := !current.Resolved
		item, err = tx.UpdateTodoByID(ctx, userID, todoID, storage.TodoUpdates{Resolved: &resolved})
		if err != nil {
			return fmt.Errorf("could not update todo: %w", err)
		}
		if item == nil {
			return serrors.With(serrors.ErrNotFound, "todo not found")
		}

		return nil
	}); err != nil {
		var se *serrors.Error
		if errors.As(err, &se) {
			return nil, err
		}

		return nil, fmt.Errorf("could not toggle todo: %w", err)
	}

	return item, nil
}

// Delete removes an item belonging to the given user. If the item does not
// exist, a not-found error is returned. Pending reminder jobs are not
// cancelled here; the reminder worker skips deleted items.
func (s service) Delete(ctx context.Context, userID domain.UserID, todoID domain.TodoID) error {
	res, err := s.storage.DeleteTodo(ctx, userID, todoID)
	if err != nil {
		return fmt.Errorf("could not delete todo: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "todo not found")
	}

	return nil
}

// New creates a new Service instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}
