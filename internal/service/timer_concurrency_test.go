package service

import (
	"context"
	"sync"
	"testing"

	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent starts must never leave a user with two running entries. Some
// attempts may lose the race and fail; the invariant is what matters.
func TestStart_ConcurrentStartsLeaveOneRunningEntry(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	ctx := context.Background()
	svc := NewTimerService(entries, tasks, uow)

	const workers = 8
	taskIDs := make([]string, workers)
	for i := range taskIDs {
		task := testutil.NewTestTask("Contended")
		require.NoError(t, tasks.Create(ctx, task))
		taskIDs[i] = task.ID
	}

	var wg sync.WaitGroup
	for _, id := range taskIDs {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()
			// Losing the race is acceptable; corrupting state is not.
			_, _ = svc.Start(ctx, testutil.TestUser, taskID, "")
		}(id)
	}
	wg.Wait()

	var open int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM time_entries WHERE user_id = ? AND end_time IS NULL`,
		testutil.TestUser).Scan(&open)
	require.NoError(t, err)
	assert.LessOrEqual(t, open, 1)

	running, err := entries.GetRunning(ctx, testutil.TestUser)
	if err == nil {
		assert.True(t, running.Running())
	} else {
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}
}
