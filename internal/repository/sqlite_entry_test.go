package repository

import (
	"context"
	"testing"
	"time"

	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTask(t *testing.T, repo *SQLiteTaskRepo, title string) string {
	t.Helper()
	task := testutil.NewTestTask(title)
	require.NoError(t, repo.Create(context.Background(), task))
	return task.ID
}

func TestEntryRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Write docs")
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	e := testutil.NewStoppedEntry(taskID, start, 3600, testutil.WithDescription("docs pass"))
	require.NoError(t, entries.Create(ctx, e))

	got, err := entries.GetByID(ctx, testutil.TestUser, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, start, got.StartTime)
	require.NotNil(t, got.DurationSec)
	assert.Equal(t, 3600, *got.DurationSec)
	assert.Equal(t, "docs pass", got.Description)
	assert.False(t, got.Running())
}

func TestEntryRepo_GetByID_ScopedByUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Scoped")
	e := testutil.NewStoppedEntry(taskID, time.Now().UTC().Add(-time.Hour), 60)
	require.NoError(t, entries.Create(ctx, e))

	_, err := entries.GetByID(ctx, "someone-else", e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_GetRunning(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Track me")

	_, err := entries.GetRunning(ctx, testutil.TestUser)
	assert.ErrorIs(t, err, ErrNotFound, "idle user has no running entry")

	running := testutil.NewRunningEntry(taskID, time.Now().UTC().Add(-10*time.Minute))
	require.NoError(t, entries.Create(ctx, running))

	got, err := entries.GetRunning(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, running.ID, got.ID)
	assert.True(t, got.Running())
	assert.Nil(t, got.DurationSec)
}

func TestEntryRepo_RunningUniquePerUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Unique running")
	first := testutil.NewRunningEntry(taskID, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, entries.Create(ctx, first))

	second := testutil.NewRunningEntry(taskID, time.Now().UTC())
	err := entries.Create(ctx, second)
	assert.Error(t, err, "partial unique index must reject a second open entry")

	// A different user is unaffected.
	otherTask := testutil.NewTestTask("Other user task", testutil.WithTaskUser("user-2"))
	require.NoError(t, tasks.Create(ctx, otherTask))
	other := testutil.NewRunningEntry(otherTask.ID, time.Now().UTC(), testutil.WithEntryUser("user-2"))
	assert.NoError(t, entries.Create(ctx, other))
}

func TestEntryRepo_ListByDateRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Ranged")
	jan1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, entries.Create(ctx, testutil.NewStoppedEntry(taskID, jan2, 1800)))
	require.NoError(t, entries.Create(ctx, testutil.NewStoppedEntry(taskID, jan1, 3600)))
	require.NoError(t, entries.Create(ctx, testutil.NewStoppedEntry(taskID, feb1, 900)))

	got, err := entries.ListByDateRange(ctx, testutil.TestUser, jan1, jan2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, jan1, got[0].StartTime, "ascending start order")
	assert.Equal(t, jan2, got[1].StartTime)
}

func TestEntryRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Editable")
	e := testutil.NewStoppedEntry(taskID, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 600)
	require.NoError(t, entries.Create(ctx, e))

	e.Notes = "adjusted"
	require.NoError(t, entries.Update(ctx, e))

	got, err := entries.GetByID(ctx, testutil.TestUser, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "adjusted", got.Notes)

	require.NoError(t, entries.Delete(ctx, testutil.TestUser, e.ID))
	_, err = entries.GetByID(ctx, testutil.TestUser, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = entries.Delete(ctx, testutil.TestUser, e.ID)
	assert.ErrorIs(t, err, ErrNotFound, "double delete reports not found")
}

func TestEntryRepo_DailyTotal_IgnoresRunning(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)
	entries := NewSQLiteEntryRepo(database)

	taskID := seedTask(t, tasks, "Daily")
	day := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)

	require.NoError(t, entries.Create(ctx, testutil.NewStoppedEntry(taskID, day, 3600)))
	require.NoError(t, entries.Create(ctx, testutil.NewStoppedEntry(taskID, day.Add(2*time.Hour), 1800)))
	require.NoError(t, entries.Create(ctx, testutil.NewRunningEntry(taskID, day.Add(5*time.Hour))))

	total, err := entries.DailyTotal(ctx, testutil.TestUser, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 5400, total, "running entry contributes nothing")

	empty, err := entries.DailyTotal(ctx, testutil.TestUser, "2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, 0, empty)
}
