package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/export"
	"github.com/saish1609/timetrack/internal/report"
	"github.com/saish1609/timetrack/internal/repository"
)

type reportService struct {
	entries  repository.EntryRepo
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

// NewReportService creates the reporting facade over the aggregation engine.
func NewReportService(entries repository.EntryRepo, tasks repository.TaskRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		entries:  entries,
		tasks:    tasks,
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Generate(ctx context.Context, userID string, start, end time.Time) (*report.Result, error) {
	var result *report.Result

	err := observeUseCase(ctx, s.observer, "report_generate", map[string]any{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
	}, func() error {
		entries, err := s.loadEntries(ctx, userID, start, end)
		if err != nil {
			return err
		}
		labels, err := s.resolveLabels(ctx, entries)
		if err != nil {
			return err
		}
		result = report.Aggregate(entries, labels, start, end)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *reportService) ExportEntries(ctx context.Context, userID string, start, end time.Time) ([]export.Entry, error) {
	entries, err := s.loadEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	labels, err := s.resolveLabels(ctx, entries)
	if err != nil {
		return nil, err
	}

	resolved := make([]export.Entry, 0, len(entries))
	for _, e := range entries {
		projectName := ""
		if e.ProjectID != nil {
			projectName = labels.ProjectNames[*e.ProjectID]
		}
		resolved = append(resolved, export.Entry{
			Start:       e.StartTime,
			End:         e.EndTime,
			DurationSec: e.LoggedSec(),
			TaskTitle:   labels.TaskTitles[e.TaskID],
			ProjectName: projectName,
			Description: e.Description,
			Notes:       e.Notes,
			Billable:    e.Billable,
		})
	}
	return resolved, nil
}

func (s *reportService) loadEntries(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%s to %s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), ErrInvalidRange)
	}
	return s.entries.ListByDateRange(ctx, userID, start, end)
}

// resolveLabels looks up display names for every task and project the
// entries reference. Soft-deleted references are simply absent from the
// maps; the aggregation engine falls back to its sentinel labels.
func (s *reportService) resolveLabels(ctx context.Context, entries []*domain.TimeEntry) (report.Labels, error) {
	labels := report.Labels{
		TaskTitles:   make(map[string]string),
		ProjectNames: make(map[string]string),
	}

	for _, e := range entries {
		if _, seen := labels.TaskTitles[e.TaskID]; !seen {
			task, err := s.tasks.GetByID(ctx, e.TaskID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return report.Labels{}, err
			}
			labels.TaskTitles[e.TaskID] = task.Title
		}
	}

	for _, e := range entries {
		if e.ProjectID == nil {
			continue
		}
		if _, seen := labels.ProjectNames[*e.ProjectID]; !seen {
			proj, err := s.projects.GetByID(ctx, *e.ProjectID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return report.Labels{}, err
			}
			labels.ProjectNames[*e.ProjectID] = proj.Name
		}
	}

	return labels, nil
}
