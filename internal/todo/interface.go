package todo

import (
	"context"
	"time"
	"toolserver/pkg/domain"
)

//go:generate mockgen -package mocktodo -source=interface.go -destination=mock/mocktodo.go *
type Service interface {
	Create(ctx context.Context, userID domain.UserID, title string, dueDate time.Time) (*domain.Todo, error)
	List(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Todo, string, error)
	Toggle(ctx context.Context, userID domain.UserID, todoID domain.TodoID) (*domain.Todo, error)
	Delete(ctx context.Context, userID domain.UserID, todoID domain.TodoID) error
}
