package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/service"
	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *repository.SQLiteTaskRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &App{
		Timer:         service.NewTimerService(entries, tasks, uow),
		Entries:       service.NewEntryService(entries, tasks),
		Tasks:         service.NewTaskService(tasks, projects),
		Projects:      service.NewProjectService(projects),
		Reports:       service.NewReportService(entries, tasks, projects),
		User:          testutil.TestUser,
		IsInteractive: func() bool { return false },
	}
	return app, tasks
}

func TestWatchModel_ShowsRunningTimer(t *testing.T) {
	app, tasks := newTestApp(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Watched task")
	require.NoError(t, tasks.Create(ctx, task))
	_, err := app.Timer.Start(ctx, app.User, task.ID, "")
	require.NoError(t, err)

	m := newWatchModel(app)
	msg := m.refreshStatus()()
	updated, _ := m.Update(msg)
	model := updated.(watchModel)

	view := model.View()
	assert.Contains(t, view, "RUNNING")
	assert.Contains(t, view, "Watched task")
}

func TestWatchModel_QuitKey(t *testing.T) {
	app, _ := newTestApp(t)

	m := newWatchModel(app)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWatchModel_StopKey(t *testing.T) {
	app, tasks := newTestApp(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Stoppable")
	require.NoError(t, tasks.Create(ctx, task))
	_, err := app.Timer.Start(ctx, app.User, task.ID, "")
	require.NoError(t, err)

	m := newWatchModel(app)
	statusMsg := m.refreshStatus()()
	updated, _ := m.Update(statusMsg)
	model := updated.(watchModel)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)

	stopMsg := cmd()
	updated, quitCmd := model.Update(stopMsg)
	model = updated.(watchModel)
	require.NotNil(t, quitCmd)
	assert.Contains(t, model.View(), "Stopped")

	_, err = app.Timer.Stop(ctx, app.User, service.StopOverrides{})
	assert.ErrorIs(t, err, service.ErrNoRunningTimer)
}

func TestWatchModel_IdleView(t *testing.T) {
	app, _ := newTestApp(t)

	m := newWatchModel(app)
	msg := m.refreshStatus()()
	updated, _ := m.Update(msg)
	model := updated.(watchModel)

	assert.Contains(t, model.View(), "No timer running")
}
