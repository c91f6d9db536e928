package domain

import "time"

// Task is a unit of trackable work owned by exactly one user. It may belong
// to a project and to a parent task; the parent chain is a tree by
// construction (children are only ever created under existing tasks).
type Task struct {
	ID          string
	UserID      string
	ProjectID   *string
	ParentID    *string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	Billable    bool

	EstimatedMin *int
	DueDate      *time.Time
	CompletedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartProgress advances a todo task to in_progress. Other statuses are
// left untouched; starting a timer on a completed task does not reopen it.
// Reports whether the status changed.
func (t *Task) StartProgress(now time.Time) bool {
	if t.Status != TaskTodo {
		return false
	}
	t.Status = TaskInProgress
	t.UpdatedAt = now.UTC()
	return true
}

// Complete marks the task completed and stamps CompletedAt.
func (t *Task) Complete(now time.Time) {
	u := now.UTC()
	t.Status = TaskCompleted
	t.CompletedAt = &u
	t.UpdatedAt = u
}
