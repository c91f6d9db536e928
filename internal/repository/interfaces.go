package repository

import (
	"context"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
)

// EntryRepo persists time entries. Every query is scoped by user; the
// storage layer enforces that at most one entry per user is running.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, userID, id string) (*domain.TimeEntry, error)
	// GetRunning returns the user's open entry, or ErrNotFound when idle.
	GetRunning(ctx context.Context, userID string) (*domain.TimeEntry, error)
	// ListByDateRange returns entries whose start time falls on a UTC
	// calendar date within [start, end], ordered by start time ascending.
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error)
	ListByTask(ctx context.Context, userID, taskID string) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, userID, id string) error
	// DailyTotal sums recorded durations of entries starting on the given
	// UTC date (YYYY-MM-DD). Running entries contribute nothing.
	DailyTotal(ctx context.Context, userID, day string) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
