package postgres

import (
	"context"
	"fmt"
	"time"
	"toolserver/pkg/domain"
	"toolserver/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	todosTable = "todos"
)

func (p *PgSQL) StoreTodos(ctx context.Context, todos ...domain.Todo) ([]domain.Todo, error) {
	if len(todos) == 0 {
		return nil, nil
	}

	var result []PgTodo
	if err := p.Builder.Insert(todosTable).
		Rows(domainTodosToPg(todos)).
		Returning(&PgTodo{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store todos into pg: %w", err)
	}

	return pgTodosToDomain(result), nil
}

// UpdateTodoByID updates a single item owned by userID. Only provided fields
// are changed; updated_at is set automatically. Soft-deleted rows are ignored.
func (p *PgSQL) UpdateTodoByID(ctx context.Context,
	userID domain.UserID,
	id domain.TodoID,
	updates storage.TodoUpdates) (*domain.Todo, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Resolved != nil {
		rec["resolved"] = *updates.Resolved
	}
	if updates.Overdue != nil {
		rec["overdue"] = *updates.Overdue
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}

	var row PgTodo
	found, err := p.Builder.Update(todosTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTodo{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update todo in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkOverdueIfUnresolved flips the overdue flag when the item is still
// unresolved. The resolved guard lives in the WHERE clause so the check and
// the update are a single atomic statement.
func (p *PgSQL) MarkOverdueIfUnresolved(ctx context.Context, id domain.TodoID) (*domain.Todo, error) {
	var row PgTodo
	found, err := p.Builder.Update(todosTable).
		Set(goqu.Record{
			"overdue":    true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("resolved").IsFalse(),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTodo{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark todo overdue in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteTodo performs a soft delete by setting the deleted_at timestamp
// for a given item and user, returning the deleted record.
func (p *PgSQL) DeleteTodo(ctx context.Context, userID domain.UserID, id domain.TodoID) (*domain.Todo, error) {
	var row PgTodo
	found, err := p.Builder.Update(todosTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTodo{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete todo in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserTodos returns a page of items for a user filtered by an optional cursor
// and limited by limit. Results are ordered by created_at DESC, id DESC; the
// next cursor is returned when more rows exist.
func (p *PgSQL) UserTodos(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserTodos, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(todosTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgTodo
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserTodos{}, fmt.Errorf("could not fetch user todos from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if limit > 0 && uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserTodos{
		Todos:      pgTodosToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// TodoByID returns an item by its ID, excluding soft-deleted rows.
func (p *PgSQL) TodoByID(ctx context.Context, userID domain.UserID, id domain.TodoID) (*domain.Todo, error) {
	var row PgTodo
	found, err := p.Builder.From(todosTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch todo by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
