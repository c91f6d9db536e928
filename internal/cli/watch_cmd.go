package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/service"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the running timer live",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal; use: timetrack status")
			}

			m := newWatchModel(app)
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

type watchKeyMap struct {
	Stop key.Binding
	Quit key.Binding
}

var watchKeys = watchKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop timer"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type watchTickMsg time.Time

type watchStatusMsg struct {
	status *service.TimerStatus
	title  string
	err    error
}

type watchStoppedMsg struct {
	loggedSec int
	err       error
}

// watchModel renders the running timer with a once-a-second refresh. The
// status is re-read from the store on every tick so a stop from another
// terminal shows up immediately.
type watchModel struct {
	app     *App
	status  *service.TimerStatus
	title   string
	stopped string
	err     error
}

func newWatchModel(app *App) watchModel {
	return watchModel{app: app}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.refreshStatus(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) refreshStatus() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		status, err := app.Timer.Status(ctx, app.User)
		if err != nil {
			return watchStatusMsg{err: err}
		}
		title := ""
		if status.Running {
			if task, err := app.Tasks.GetByID(ctx, app.User, status.Entry.TaskID); err == nil {
				title = task.Title
			}
		}
		return watchStatusMsg{status: status, title: title}
	}
}

func (m watchModel) stopTimer() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		entry, err := app.Timer.Stop(context.Background(), app.User, service.StopOverrides{})
		if err != nil {
			return watchStoppedMsg{err: err}
		}
		return watchStoppedMsg{loggedSec: entry.LoggedSec()}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.Stop):
			if m.status != nil && m.status.Running {
				return m, m.stopTimer()
			}
		}

	case watchTickMsg:
		return m, tea.Batch(m.refreshStatus(), watchTick())

	case watchStatusMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
			m.title = msg.title
		}
		return m, nil

	case watchStoppedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stopped = fmt.Sprintf("Stopped. Recorded %s.", formatter.FormatSeconds(msg.loggedSec))
		return m, tea.Quit
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.stopped != "" {
		return m.stopped + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.status == nil {
		return formatter.Dim("Loading...") + "\n"
	}

	out := formatter.FormatTimerStatus(m.status, m.title)
	help := formatter.Dim("s stop · q quit")
	return out + "\n" + help + "\n"
}
