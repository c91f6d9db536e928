package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/repository"
)

type timerService struct {
	entries  repository.EntryRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewTimerService creates the timer controller. All compound operations run
// through the UnitOfWork so that stop-then-create sequences are atomic; the
// storage layer's partial unique index backs the single-running-entry
// invariant even across processes.
func NewTimerService(entries repository.EntryRepo, tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TimerService {
	return &timerService{
		entries:  entries,
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timerService) Start(ctx context.Context, userID, taskID, description string) (*domain.TimeEntry, error) {
	var created *domain.TimeEntry

	err := observeUseCase(ctx, s.observer, "timer_start", map[string]any{"task_id": taskID}, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txTasks := repository.NewSQLiteTaskRepo(tx)
			txEntries := repository.NewSQLiteEntryRepo(tx)

			task, err := txTasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			if task.UserID != userID {
				return fmt.Errorf("task %s: %w", taskID, ErrForbidden)
			}

			// Whole-second resolution keeps derived durations exact
			// across the RFC3339 storage round trip.
			now := time.Now().UTC().Truncate(time.Second)

			// Implicitly stop any running entry inside the same
			// transaction, so no caller ever observes two open entries.
			if err := stopRunningLocked(ctx, txEntries, userID, now, StopOverrides{}); err != nil &&
				!errors.Is(err, ErrNoRunningTimer) {
				return err
			}

			entry := &domain.TimeEntry{
				ID:          uuid.New().String(),
				UserID:      userID,
				TaskID:      task.ID,
				ProjectID:   task.ProjectID,
				StartTime:   now,
				Description: description,
				Billable:    task.Billable,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := txEntries.Create(ctx, entry); err != nil {
				return err
			}

			if task.StartProgress(now) {
				if err := txTasks.Update(ctx, task); err != nil {
					return err
				}
			}

			created = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *timerService) Stop(ctx context.Context, userID string, overrides StopOverrides) (*domain.TimeEntry, error) {
	var stopped *domain.TimeEntry

	err := observeUseCase(ctx, s.observer, "timer_stop", nil, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txEntries := repository.NewSQLiteEntryRepo(tx)
			now := time.Now().UTC().Truncate(time.Second)

			entry, err := stopRunningEntry(ctx, txEntries, userID, now, overrides)
			if err != nil {
				return err
			}
			stopped = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return stopped, nil
}

func (s *timerService) Pause(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	// Pausing is stopping: there is no partial state to resume from.
	return s.Stop(ctx, userID, StopOverrides{})
}

// SwitchTask stops the running entry, then starts one for newTaskID. The
// stop commits before the start runs; if the start fails the previous entry
// stays stopped and the user is left idle.
func (s *timerService) SwitchTask(ctx context.Context, userID, newTaskID, description string) (*domain.TimeEntry, error) {
	if _, err := s.Stop(ctx, userID, StopOverrides{}); err != nil && !errors.Is(err, ErrNoRunningTimer) {
		return nil, err
	}
	return s.Start(ctx, userID, newTaskID, description)
}

func (s *timerService) Status(ctx context.Context, userID string) (*TimerStatus, error) {
	entry, err := s.entries.GetRunning(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &TimerStatus{}, nil
		}
		return nil, err
	}
	return &TimerStatus{
		Running:    true,
		Entry:      entry,
		ElapsedSec: entry.ElapsedAt(time.Now()),
	}, nil
}

func (s *timerService) UpdateDescription(ctx context.Context, userID, description string) (*domain.TimeEntry, error) {
	var updated *domain.TimeEntry

	err := observeUseCase(ctx, s.observer, "timer_update_description", nil, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txEntries := repository.NewSQLiteEntryRepo(tx)

			entry, err := txEntries.GetRunning(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return ErrNoRunningTimer
				}
				return err
			}

			entry.Description = description
			if err := txEntries.Update(ctx, entry); err != nil {
				return err
			}
			updated = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *timerService) DailyStats(ctx context.Context, userID string, day time.Time) (*DailyStats, error) {
	date := day.UTC().Format("2006-01-02")

	total, err := s.entries.DailyTotal(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	running := true
	if _, err := s.entries.GetRunning(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		running = false
	}

	return &DailyStats{Date: date, TotalSec: total, Running: running}, nil
}

// stopRunningEntry closes the user's running entry or reports
// ErrNoRunningTimer. Must be called with tx-scoped repositories.
func stopRunningEntry(ctx context.Context, entries repository.EntryRepo, userID string, now time.Time, overrides StopOverrides) (*domain.TimeEntry, error) {
	entry, err := entries.GetRunning(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoRunningTimer
		}
		return nil, err
	}

	if err := entry.Finish(now); err != nil {
		return nil, err
	}
	entry.Description = domain.StrFromPtrWithDefault(entry.Description, overrides.Description)
	entry.Notes = domain.StrFromPtrWithDefault(entry.Notes, overrides.Notes)

	if err := entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func stopRunningLocked(ctx context.Context, entries repository.EntryRepo, userID string, now time.Time, overrides StopOverrides) error {
	_, err := stopRunningEntry(ctx, entries, userID, now, overrides)
	return err
}
