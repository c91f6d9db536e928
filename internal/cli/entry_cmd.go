package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage time entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryListCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var taskID, startStr, endStr, description, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Backfill a finished time entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// On a terminal, missing arguments become form prompts.
			if taskID == "" && app.interactive() {
				form := formSelectTask(ctx, app, &taskID)
				if form == nil {
					return fmt.Errorf("no tasks to log against; create one with: timetrack task add")
				}
				if err := form.Run(); err != nil {
					return err
				}
			}
			if taskID == "" {
				return fmt.Errorf("--task is required")
			}

			if (startStr == "" || endStr == "") && app.interactive() {
				if err := backfillForm(&startStr, &endStr, &description).Run(); err != nil {
					return err
				}
			}
			if startStr == "" || endStr == "" {
				return fmt.Errorf("--start and --end are required")
			}

			start, err := parseTimestamp(startStr)
			if err != nil {
				return fmt.Errorf("invalid start time: %w", err)
			}
			end, err := parseTimestamp(endStr)
			if err != nil {
				return fmt.Errorf("invalid end time: %w", err)
			}
			endUTC := end.UTC()

			entry := &domain.TimeEntry{
				UserID:      app.User,
				TaskID:      taskID,
				StartTime:   start.UTC(),
				EndTime:     &endUTC,
				Description: description,
				Notes:       notes,
				Billable:    true,
			}
			if err := app.Entries.Backfill(ctx, entry); err != nil {
				return timerError(err)
			}
			fmt.Printf("Logged %s against task %s\n",
				formatter.FormatSeconds(entry.LoggedSec()), taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&startStr, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "End time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Entry description")
	cmd.Flags().StringVar(&notes, "notes", "", "Entry notes")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var taskID string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []*domain.TimeEntry
			var err error
			if taskID != "" {
				entries, err = app.Entries.ListByTask(ctx, app.User, taskID)
			} else {
				end := time.Now()
				entries, err = app.Entries.ListByDateRange(ctx, app.User,
					end.AddDate(0, 0, -(days-1)), end)
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries found.")
				return nil
			}

			headers := []string{"ID", "DATE", "START", "END", "TIME", "DESCRIPTION"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				endCell := formatter.StyleGreen.Render("running")
				timeCell := formatter.Dim("--")
				if e.EndTime != nil {
					endCell = e.EndTime.Local().Format("15:04")
					timeCell = formatter.FormatSeconds(e.LoggedSec())
				}
				descPreview := e.Description
				if len(descPreview) > 40 {
					descPreview = descPreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					formatter.HumanDate(e.StartTime.Local()),
					e.StartTime.Local().Format("15:04"),
					endCell,
					timeCell,
					formatter.Dim(descPreview),
				})
			}

			fmt.Print(formatter.RenderBox("Entries", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Filter by task ID")
	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Delete(context.Background(), app.User, args[0]); err != nil {
				return timerError(err)
			}
			fmt.Printf("Removed entry %s\n", args[0])
			return nil
		},
	}
}
