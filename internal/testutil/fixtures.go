package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/saish1609/timetrack/internal/domain"
)

// TestUser is the user all fixtures belong to unless overridden.
const TestUser = "user-1"

// Project options
type ProjectOption func(*domain.Project)

func WithProjectUser(userID string) ProjectOption {
	return func(p *domain.Project) {
		p.UserID = userID
	}
}

func WithProjectBillable(b bool) ProjectOption {
	return func(p *domain.Project) {
		p.Billable = b
	}
}

func WithHourlyRateCents(cents int) ProjectOption {
	return func(p *domain.Project) {
		p.HourlyRateCents = &cents
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Name:      name,
		Billable:  true,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskUser(userID string) TaskOption {
	return func(t *domain.Task) {
		t.UserID = userID
	}
}

func WithTaskProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &projectID
	}
}

func WithTaskParent(parentID string) TaskOption {
	return func(t *domain.Task) {
		t.ParentID = &parentID
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskBillable(b bool) TaskOption {
	return func(t *domain.Task) {
		t.Billable = b
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Title:     title,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		Billable:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithEntryUser(userID string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.UserID = userID
	}
}

func WithEntryProject(projectID string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.ProjectID = &projectID
	}
}

func WithEntryBillable(b bool) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Billable = b
	}
}

func WithDescription(d string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = d
	}
}

// NewStoppedEntry builds a finished entry starting at the given instant
// with the given recorded duration.
func NewStoppedEntry(taskID string, start time.Time, durationSec int, opts ...EntryOption) *domain.TimeEntry {
	now := time.Now().UTC()
	end := start.Add(time.Duration(durationSec) * time.Second)
	e := &domain.TimeEntry{
		ID:          uuid.New().String(),
		UserID:      TestUser,
		TaskID:      taskID,
		StartTime:   start.UTC(),
		EndTime:     &end,
		DurationSec: &durationSec,
		Billable:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewRunningEntry builds an open entry started at the given instant.
func NewRunningEntry(taskID string, start time.Time, opts ...EntryOption) *domain.TimeEntry {
	now := time.Now().UTC()
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		TaskID:    taskID,
		StartTime: start.UTC(),
		Billable:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
