package service

import (
	"context"
	"testing"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_CreatesRunningEntry(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Write tests")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	entry, err := svc.Start(ctx, testutil.TestUser, task.ID, "unit tests")
	require.NoError(t, err)

	assert.True(t, entry.Running())
	assert.Nil(t, entry.DurationSec)
	assert.Equal(t, task.ID, entry.TaskID)
	assert.Equal(t, "unit tests", entry.Description)

	got, err := r.entries.GetRunning(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
}

func TestStart_AdvancesTodoTaskToInProgress(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Todo task")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)

	updated, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, updated.Status)
}

func TestStart_DoesNotReopenCompletedTask(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Done task", testutil.WithTaskStatus(domain.TaskCompleted))
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)

	updated, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, updated.Status)
}

func TestStart_UnknownTask(t *testing.T) {
	r := setupRepos(t)
	svc := NewTimerService(r.entries, r.tasks, r.uow)

	_, err := svc.Start(context.Background(), testutil.TestUser, "missing", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStart_ForeignTask(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Not yours", testutil.WithTaskUser("user-2"))
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestStart_ImplicitlyStopsPreviousEntry(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	taskX := testutil.NewTestTask("Task X")
	taskY := testutil.NewTestTask("Task Y")
	require.NoError(t, r.tasks.Create(ctx, taskX))
	require.NoError(t, r.tasks.Create(ctx, taskY))

	svc := NewTimerService(r.entries, r.tasks, r.uow)

	first, err := svc.Start(ctx, testutil.TestUser, taskX.ID, "")
	require.NoError(t, err)
	second, err := svc.Start(ctx, testutil.TestUser, taskY.ID, "")
	require.NoError(t, err)

	// Exactly one running entry, for task Y.
	running, err := r.entries.GetRunning(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, second.ID, running.ID)
	assert.Equal(t, taskY.ID, running.TaskID)

	// The task X entry was closed with a derived duration.
	stopped, err := r.entries.GetByID(ctx, testutil.TestUser, first.ID)
	require.NoError(t, err)
	require.NotNil(t, stopped.EndTime)
	require.NotNil(t, stopped.DurationSec)
	assert.Equal(t, int(stopped.EndTime.Sub(stopped.StartTime).Seconds()), *stopped.DurationSec)
	assert.GreaterOrEqual(t, *stopped.DurationSec, 0)
}

func TestStop_DerivesDuration(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Stoppable")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)

	stopped, err := svc.Stop(ctx, testutil.TestUser, StopOverrides{
		Description: strPtr("wrapped up"),
		Notes:       strPtr("see ticket"),
	})
	require.NoError(t, err)

	assert.False(t, stopped.Running())
	require.NotNil(t, stopped.DurationSec)
	assert.Equal(t, int(stopped.EndTime.Sub(stopped.StartTime).Seconds()), *stopped.DurationSec)
	assert.Equal(t, "wrapped up", stopped.Description)
	assert.Equal(t, "see ticket", stopped.Notes)
}

func TestStop_TwiceReportsNoRunningTimer(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Once only")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)

	_, err = svc.Stop(ctx, testutil.TestUser, StopOverrides{})
	require.NoError(t, err)

	_, err = svc.Stop(ctx, testutil.TestUser, StopOverrides{})
	assert.ErrorIs(t, err, ErrNoRunningTimer, "second stop is an error, not a silent no-op")
}

func TestPause_StopsWithoutOverrides(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Pausable")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	started, err := svc.Start(ctx, testutil.TestUser, task.ID, "keep me")
	require.NoError(t, err)

	paused, err := svc.Pause(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, started.ID, paused.ID)
	assert.False(t, paused.Running())
	assert.Equal(t, "keep me", paused.Description, "pause never rewrites fields")

	_, err = svc.Pause(ctx, testutil.TestUser)
	assert.ErrorIs(t, err, ErrNoRunningTimer)
}

func TestSwitchTask_MovesTheRunningEntry(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	taskX := testutil.NewTestTask("Task X")
	taskY := testutil.NewTestTask("Task Y")
	require.NoError(t, r.tasks.Create(ctx, taskX))
	require.NoError(t, r.tasks.Create(ctx, taskY))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	_, err := svc.Start(ctx, testutil.TestUser, taskX.ID, "")
	require.NoError(t, err)

	entry, err := svc.SwitchTask(ctx, testutil.TestUser, taskY.ID, "new focus")
	require.NoError(t, err)
	assert.Equal(t, taskY.ID, entry.TaskID)

	running, err := r.entries.GetRunning(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, running.ID)
}

func TestSwitchTask_ToUnknownTaskLeavesUserIdle(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	taskX := testutil.NewTestTask("Task X")
	require.NoError(t, r.tasks.Create(ctx, taskX))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	first, err := svc.Start(ctx, testutil.TestUser, taskX.ID, "")
	require.NoError(t, err)

	_, err = svc.SwitchTask(ctx, testutil.TestUser, "missing", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The stop half committed: previous entry is closed, nothing runs.
	stopped, err := r.entries.GetByID(ctx, testutil.TestUser, first.ID)
	require.NoError(t, err)
	assert.NotNil(t, stopped.EndTime)

	_, err = r.entries.GetRunning(ctx, testutil.TestUser)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSwitchTask_WhileIdleJustStarts(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Fresh")
	require.NoError(t, r.tasks.Create(ctx, task))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	entry, err := svc.SwitchTask(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)
	assert.True(t, entry.Running())
}

func TestStatus(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	svc := NewTimerService(r.entries, r.tasks, r.uow)

	idle, err := svc.Status(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.False(t, idle.Running)
	assert.Nil(t, idle.Entry)
	assert.Equal(t, 0, idle.ElapsedSec)

	task := testutil.NewTestTask("Watch me")
	require.NoError(t, r.tasks.Create(ctx, task))
	started, err := svc.Start(ctx, testutil.TestUser, task.ID, "")
	require.NoError(t, err)

	status, err := svc.Status(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.True(t, status.Running)
	require.NotNil(t, status.Entry)
	assert.Equal(t, started.ID, status.Entry.ID)
	assert.GreaterOrEqual(t, status.ElapsedSec, 0)
}

func TestUpdateDescription(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	svc := NewTimerService(r.entries, r.tasks, r.uow)

	_, err := svc.UpdateDescription(ctx, testutil.TestUser, "nothing running")
	assert.ErrorIs(t, err, ErrNoRunningTimer)

	task := testutil.NewTestTask("Describable")
	require.NoError(t, r.tasks.Create(ctx, task))
	_, err = svc.Start(ctx, testutil.TestUser, task.ID, "old")
	require.NoError(t, err)

	updated, err := svc.UpdateDescription(ctx, testutil.TestUser, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
	assert.True(t, updated.Running(), "only the description changes")
}

func TestDailyStats(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Daily")
	require.NoError(t, r.tasks.Create(ctx, task))

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.entries.Create(ctx,
		testutil.NewStoppedEntry(task.ID, day.Add(9*time.Hour), 3600)))
	require.NoError(t, r.entries.Create(ctx,
		testutil.NewStoppedEntry(task.ID, day.Add(13*time.Hour), 1800)))
	require.NoError(t, r.entries.Create(ctx,
		testutil.NewRunningEntry(task.ID, day.Add(16*time.Hour))))

	svc := NewTimerService(r.entries, r.tasks, r.uow)
	stats, err := svc.DailyStats(ctx, testutil.TestUser, day)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", stats.Date)
	assert.Equal(t, 5400, stats.TotalSec, "running entry is not partially credited")
	assert.True(t, stats.Running)
}
