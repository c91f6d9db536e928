package cli

import (
	"context"
	"fmt"

	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskArchiveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var projectID, parentID, priority, description string
	var billable bool

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if priority != "" && !domain.ValidTaskPriorities[priority] {
				return fmt.Errorf("invalid priority %q (low, medium, high, urgent)", priority)
			}

			task := &domain.Task{
				UserID:      app.User,
				Title:       args[0],
				Description: description,
				Priority:    domain.TaskPriority(priority),
				Billable:    billable,
			}
			if projectID != "" {
				task.ProjectID = &projectID
			}
			if parentID != "" {
				task.ParentID = &parentID
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return timerError(err)
			}
			fmt.Printf("Created task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent task ID")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().BoolVar(&billable, "billable", true, "Whether time on this task is billable")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), app.User, includeArchived)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "STATUS", "PRIORITY", "BILL"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					formatter.Bold(t.Title),
					formatter.TaskStatusPill(t.Status),
					formatter.PriorityBadge(t.Priority),
					formatter.BillableBadge(t.Billable),
				})
			}

			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Complete(context.Background(), app.User, args[0])
			if err != nil {
				return timerError(err)
			}
			fmt.Printf("Completed %s\n", task.Title)
			return nil
		},
	}
}

func newTaskArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Archive(context.Background(), app.User, args[0]); err != nil {
				return timerError(err)
			}
			fmt.Printf("Archived task %s\n", args[0])
			return nil
		},
	}
}
