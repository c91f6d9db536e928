package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/repository"
)

type entryService struct {
	entries repository.EntryRepo
	tasks   repository.TaskRepo
}

// NewEntryService creates the manual entry manager.
func NewEntryService(entries repository.EntryRepo, tasks repository.TaskRepo) EntryService {
	return &entryService{entries: entries, tasks: tasks}
}

func (s *entryService) Backfill(ctx context.Context, e *domain.TimeEntry) error {
	task, err := s.tasks.GetByID(ctx, e.TaskID)
	if err != nil {
		return err
	}
	if task.UserID != e.UserID {
		return fmt.Errorf("task %s: %w", e.TaskID, ErrForbidden)
	}

	if e.EndTime == nil {
		return fmt.Errorf("backfilled entry requires an end time")
	}
	e.StartTime = e.StartTime.UTC().Truncate(time.Second)
	end := e.EndTime.UTC().Truncate(time.Second)
	e.EndTime = &end
	if err := e.RecomputeDuration(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.ProjectID == nil {
		e.ProjectID = task.ProjectID
	}
	e.Manual = true
	e.CreatedAt = now
	e.UpdatedAt = now

	return s.entries.Create(ctx, e)
}

func (s *entryService) Update(ctx context.Context, userID, id string, upd EntryUpdate) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.Description = domain.StrFromPtrWithDefault(entry.Description, upd.Description)
	entry.Notes = domain.StrFromPtrWithDefault(entry.Notes, upd.Notes)
	entry.Billable = domain.BoolFromPtrWithDefault(entry.Billable, upd.Billable)

	timesChanged := false
	if upd.StartTime != nil {
		entry.StartTime = upd.StartTime.UTC().Truncate(time.Second)
		timesChanged = true
	}
	if upd.EndTime != nil {
		end := upd.EndTime.UTC().Truncate(time.Second)
		if entry.EndTime == nil {
			return nil, fmt.Errorf("time entry %s is running; stop it instead of setting an end time", id)
		}
		entry.EndTime = &end
		timesChanged = true
	}
	if timesChanged {
		if err := entry.RecomputeDuration(); err != nil {
			return nil, err
		}
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, userID, id string) error {
	return s.entries.Delete(ctx, userID, id)
}

func (s *entryService) ListByTask(ctx context.Context, userID, taskID string) ([]*domain.TimeEntry, error) {
	return s.entries.ListByTask(ctx, userID, taskID)
}

func (s *entryService) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%s to %s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), ErrInvalidRange)
	}
	return s.entries.ListByDateRange(ctx, userID, start, end)
}
