package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/service"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "start TASK-ID",
		Short: "Start timing a task, stopping any running timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry, err := app.Timer.Start(ctx, app.User, args[0], description)
			if err != nil {
				return timerError(err)
			}
			fmt.Printf("Started timer for task %s at %s\n",
				args[0], entry.StartTime.Local().Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What you are working on")

	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	var description, notes string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := service.StopOverrides{}
			if cmd.Flags().Changed("description") {
				overrides.Description = &description
			}
			if cmd.Flags().Changed("notes") {
				overrides.Notes = &notes
			}

			entry, err := app.Timer.Stop(context.Background(), app.User, overrides)
			if err != nil {
				return timerError(err)
			}
			fmt.Printf("Stopped. Recorded %s.\n", formatter.FormatSeconds(entry.LoggedSec()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Replace the entry description")
	cmd.Flags().StringVar(&notes, "notes", "", "Attach notes to the entry")

	return cmd
}

func newPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer (resume with start)",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timer.Pause(context.Background(), app.User)
			if err != nil {
				return timerError(err)
			}
			fmt.Printf("Paused after %s. Resume with: timetrack start %s\n",
				formatter.FormatSeconds(entry.LoggedSec()), entry.TaskID)
			return nil
		},
	}
}

func newSwitchCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "switch TASK-ID",
		Short: "Stop the running timer and start timing another task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timer.SwitchTask(context.Background(), app.User, args[0], description)
			if err != nil {
				return timerError(err)
			}
			fmt.Printf("Switched to task %s at %s\n",
				args[0], entry.StartTime.Local().Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What you are working on")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			status, err := app.Timer.Status(ctx, app.User)
			if err != nil {
				return err
			}

			title := ""
			if status.Running {
				if task, err := app.Tasks.GetByID(ctx, app.User, status.Entry.TaskID); err == nil {
					title = task.Title
				}
			}
			fmt.Println(formatter.FormatTimerStatus(status, title))
			return nil
		},
	}
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the total recorded today",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Timer.DailyStats(context.Background(), app.User, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDailyStats(stats))
			return nil
		},
	}
}

// timerError rewrites common sentinel errors into actionable messages.
func timerError(err error) error {
	switch {
	case errors.Is(err, service.ErrNoRunningTimer):
		return fmt.Errorf("no timer is running")
	case errors.Is(err, repository.ErrNotFound):
		return err
	case errors.Is(err, service.ErrForbidden):
		return fmt.Errorf("that belongs to another user")
	default:
		return err
	}
}
