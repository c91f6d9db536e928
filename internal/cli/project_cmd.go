package cli

import (
	"context"
	"fmt"

	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var clientName, description string
	var billable bool
	var hourlyRateCents int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj := &domain.Project{
				UserID:      app.User,
				Name:        args[0],
				Description: description,
				ClientName:  clientName,
				Billable:    billable,
			}
			if cmd.Flags().Changed("rate-cents") {
				proj.HourlyRateCents = &hourlyRateCents
			}

			if err := app.Projects.Create(context.Background(), proj); err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s)\n", proj.Name, proj.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "Client name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().BoolVar(&billable, "billable", true, "Whether project time is billable by default")
	cmd.Flags().IntVar(&hourlyRateCents, "rate-cents", 0, "Hourly rate in cents")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), app.User)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			headers := []string{"ID", "NAME", "CLIENT", "BILL", "RATE"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rate := formatter.Dim("--")
				if p.HourlyRateCents != nil {
					rate = fmt.Sprintf("%.2f/h", float64(*p.HourlyRateCents)/100)
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					formatter.Bold(p.Name),
					formatter.Dim(p.ClientName),
					formatter.BillableBadge(p.Billable),
					rate,
				})
			}

			fmt.Print(formatter.RenderBox("Projects", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
