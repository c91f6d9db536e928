package service

import (
	"context"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/export"
	"github.com/saish1609/timetrack/internal/report"
)

// StopOverrides optionally replaces fields on the entry being stopped.
type StopOverrides struct {
	Description *string
	Notes       *string
}

// TimerStatus is the result of a status query. ElapsedSec is live elapsed
// time while running and 0 otherwise.
type TimerStatus struct {
	Running    bool
	Entry      *domain.TimeEntry
	ElapsedSec int
}

// DailyStats reports the total recorded on one UTC calendar date. Entries
// still running contribute nothing until stopped; live elapsed time is
// available separately through Status.
type DailyStats struct {
	Date     string
	TotalSec int
	Running  bool
}

// TimerService owns the single-active-timer invariant: a user has at most
// one running entry at any instant, across all operations and callers.
type TimerService interface {
	// Start begins timing taskID, implicitly stopping any running entry
	// first. The two steps are atomic: no caller-visible window allows
	// two running entries for the same user. A todo task advances to
	// in_progress.
	Start(ctx context.Context, userID, taskID, description string) (*domain.TimeEntry, error)
	// Stop closes the running entry, deriving its duration.
	Stop(ctx context.Context, userID string, overrides StopOverrides) (*domain.TimeEntry, error)
	// Pause is Stop without overrides; resuming is a new Start.
	Pause(ctx context.Context, userID string) (*domain.TimeEntry, error)
	// SwitchTask stops the current entry (if any), then starts newTaskID.
	// The two halves are not transactional: if the start fails the user
	// is left idle with the previous entry stopped.
	SwitchTask(ctx context.Context, userID, newTaskID, description string) (*domain.TimeEntry, error)
	Status(ctx context.Context, userID string) (*TimerStatus, error)
	UpdateDescription(ctx context.Context, userID, description string) (*domain.TimeEntry, error)
	DailyStats(ctx context.Context, userID string, day time.Time) (*DailyStats, error)
}

// EntryUpdate carries optional field edits for a time entry. Editing either
// timestamp forces a duration recomputation.
type EntryUpdate struct {
	Description *string
	Notes       *string
	StartTime   *time.Time
	EndTime     *time.Time
	Billable    *bool
}

// EntryService manages manual backfill and edits of time entries. Stopped
// entries are never reopened; correcting a closed interval means editing
// its timestamps, not resurrecting it.
type EntryService interface {
	// Backfill records a finished interval with both timestamps given.
	Backfill(ctx context.Context, e *domain.TimeEntry) error
	Update(ctx context.Context, userID, id string, upd EntryUpdate) (*domain.TimeEntry, error)
	Delete(ctx context.Context, userID, id string) error
	ListByTask(ctx context.Context, userID, taskID string) ([]*domain.TimeEntry, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error)
	Complete(ctx context.Context, userID, id string) (*domain.Task, error)
	Archive(ctx context.Context, userID, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, userID, id string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
}

// ReportService produces aggregated reports and export-ready entry rows
// for a user and date range.
type ReportService interface {
	Generate(ctx context.Context, userID string, start, end time.Time) (*report.Result, error)
	// ExportEntries returns the period's entries resolved with task and
	// project names, in start-time order, for the export formatter.
	ExportEntries(ctx context.Context, userID string, start, end time.Time) ([]export.Entry, error)
}
