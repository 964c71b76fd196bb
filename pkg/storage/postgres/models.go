package postgres

import (
	"database/sql"
	"time"
	"toolserver/pkg/domain"

	"github.com/google/uuid"
)

type PgTodo struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Title    string `db:"title"`
	Resolved bool   `db:"resolved"`
	Overdue  bool   `db:"overdue"`

	DueDate sql.NullTime `db:"due_date"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgTodo) ToDomain() *domain.Todo {
	return &domain.Todo{
		ID:        domain.TodoID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Title:     p.Title,
		Resolved:  p.Resolved,
		Overdue:   p.Overdue,
		DueDate:   p.DueDate.Time,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgTodo) FromDomain(todo domain.Todo) {
	*p = PgTodo{
		ID:       uuid.UUID(todo.ID),
		UserID:   uuid.UUID(todo.UserID),
		Title:    todo.Title,
		Resolved: todo.Resolved,
		Overdue:  todo.Overdue,
		DueDate: sql.NullTime{
			Time:  todo.DueDate,
			Valid: !todo.DueDate.IsZero(),
		},
		CreatedAt: todo.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  todo.UpdatedAt,
			Valid: !todo.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  todo.DeletedAt,
			Valid: !todo.DeletedAt.IsZero(),
		},
	}
}

func domainTodosToPg(todos []domain.Todo) []PgTodo {
	out := make([]PgTodo, len(todos))
	for i := range out {
		out[i].FromDomain(todos[i])
	}

	return out
}

func pgTodosToDomain(todos []PgTodo) []domain.Todo {
	out := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		out = append(out, *todo.ToDomain())
	}

	return out
}
