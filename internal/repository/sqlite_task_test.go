package repository

import (
	"context"
	"testing"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	projects := NewSQLiteProjectRepo(database)
	tasks := NewSQLiteTaskRepo(database)

	proj := testutil.NewTestProject("Client Work")
	require.NoError(t, projects.Create(ctx, proj))

	task := testutil.NewTestTask("Implement feature", testutil.WithTaskProject(proj.ID))
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Implement feature", got.Title)
	assert.Equal(t, domain.TaskTodo, got.Status)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, proj.ID, *got.ProjectID)

	_, err = tasks.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_SubtaskParentLink(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)

	parent := testutil.NewTestTask("Parent")
	require.NoError(t, tasks.Create(ctx, parent))

	child := testutil.NewTestTask("Child", testutil.WithTaskParent(parent.ID))
	require.NoError(t, tasks.Create(ctx, child))

	got, err := tasks.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}

func TestTaskRepo_ListExcludesArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("Open")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("Gone",
		testutil.WithTaskStatus(domain.TaskArchived))))

	visible, err := tasks.List(ctx, testutil.TestUser, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Open", visible[0].Title)

	all, err := tasks.List(ctx, testutil.TestUser, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)

	task := testutil.NewTestTask("Flip me")
	require.NoError(t, tasks.Create(ctx, task))

	task.Status = domain.TaskInProgress
	require.NoError(t, tasks.Update(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestProjectRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	projects := NewSQLiteProjectRepo(database)

	proj := testutil.NewTestProject("Billing",
		testutil.WithHourlyRateCents(12500),
		testutil.WithProjectBillable(true))
	proj.ClientName = "ACME"
	require.NoError(t, projects.Create(ctx, proj))

	got, err := projects.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.ClientName)
	require.NotNil(t, got.HourlyRateCents)
	assert.Equal(t, 12500, *got.HourlyRateCents)

	list, err := projects.List(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
