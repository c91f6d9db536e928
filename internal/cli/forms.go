package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/saish1609/timetrack/internal/cli/formatter"
)

// timetrackHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func timetrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formSelectTask creates a huh form to select a task from the user's open
// tasks. Returns nil when there is nothing to select.
func formSelectTask(ctx context.Context, app *App, result *string) *huh.Form {
	tasks, err := app.Tasks.List(ctx, app.User, false)
	if err != nil || len(tasks) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(tasks))
	for _, t := range tasks {
		options = append(options, huh.NewOption(t.Title, t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Task?").
				Options(options...).
				Value(result),
		),
	).WithTheme(timetrackHuhTheme()).WithShowHelp(false)
}

// backfillForm collects the interval and description for a manual entry.
func backfillForm(start, end, description *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Placeholder("2026-08-31 09:00").
				Value(start).
				Validate(validateTimestamp),
			huh.NewInput().
				Title("End (YYYY-MM-DD HH:MM)").
				Placeholder("2026-08-31 10:30").
				Value(end).
				Validate(validateTimestamp),
			huh.NewInput().
				Title("Description (optional)").
				Value(description),
		),
	).WithTheme(timetrackHuhTheme()).WithShowHelp(false)
}

func validateTimestamp(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	if _, err := parseTimestamp(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD HH:MM")
	}
	return nil
}

// parseTimestamp accepts a local "YYYY-MM-DD HH:MM" timestamp or RFC3339.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseDate accepts a bare "YYYY-MM-DD" calendar date.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
