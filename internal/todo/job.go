package todo

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// ReminderJobArgs contains the arguments for a due-date reminder job submitted
// to River. The struct is used as the unique key for jobs to prevent duplicate
// reminders per item.
type ReminderJobArgs struct {
	// TodoID is the item to check at its due time. It is marked as unique so
	// River can enforce one reminder per item according to InsertOpts.UniqueOpts.
	TodoID uuid.UUID `json:"todo_id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// dueDate is the time at which the job becomes available for work.
	dueDate time.Time
}

// Kind returns the River job kind used to register and dispatch the reminder worker.
func (args ReminderJobArgs) Kind() string { return "TodoReminderJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// The job is scheduled for the item's due time and deduplicated by arguments so
// re-creating an item with the same ID never produces two reminders.
func (args ReminderJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		ScheduledAt: args.dueDate,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
