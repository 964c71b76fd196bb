package worker

import (
	"context"
	"fmt"
	"toolserver/internal/todo"
	"toolserver/pkg/domain"
	"toolserver/pkg/logger"
	"toolserver/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// TodoReminderWorker is a River worker that runs when an item's due time is
// reached. It marks the item overdue unless it has been resolved or deleted in
// the meantime. The resolved check happens inside the storage layer as part of
// the update statement, so a concurrent resolve cannot race the reminder.
type TodoReminderWorker struct {
	river.WorkerDefaults[todo.ReminderJobArgs]

	// storage is used to flip the overdue flag on the due item.
	storage storage.Storage
}

// NewTodoReminderWorker constructs a TodoReminderWorker using the provided storage.
func NewTodoReminderWorker(st storage.Storage) *TodoReminderWorker {
	return &TodoReminderWorker{storage: st}
}

// Work executes a single reminder job. Items that no longer need a reminder
// (resolved or deleted) complete the job without effect.
func (w *TodoReminderWorker) Work(ctx context.Context, job *river.Job[todo.ReminderJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("todoID", job.Args.TodoID.String()))

	updated, err := w.storage.MarkOverdueIfUnresolved(ctx, domain.TodoID(job.Args.TodoID))
	if err != nil {
		logger.Error(ctx, "error marking todo overdue", zap.Error(err))

		return fmt.Errorf("could not mark todo overdue: %w", err)
	}

	if updated == nil {
		logger.Debug(ctx, "todo already resolved or deleted, skipping reminder")

		return nil
	}

	logger.Info(ctx, "todo marked overdue")

	return nil
}
