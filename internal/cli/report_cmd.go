package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/saish1609/timetrack/internal/cli/formatter"
	"github.com/saish1609/timetrack/internal/export"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var fromStr, toStr string
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show an aggregated time report",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := resolveRange(fromStr, toStr, days)
			if err != nil {
				return err
			}

			ctx := context.Background()
			result, err := app.Reports.Generate(ctx, app.User, start, end)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReport(result))

			// A running entry counts as 0 until stopped; say so rather
			// than letting the report silently undercount.
			if status, err := app.Timer.Status(ctx, app.User); err == nil &&
				status.Running && status.Entry.StartTime.Before(end) {
				fmt.Println(formatter.Dim(
					"Note: a timer is running; its time is not included until stopped."))
			}
			return nil
		},
	}

	addRangeFlags(cmd, &fromStr, &toStr, &days)

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var fromStr, toStr, outPath string
	var days int
	var withSummary bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export time entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, end, err := resolveRange(fromStr, toStr, days)
			if err != nil {
				return err
			}

			entries, err := app.Reports.ExportEntries(ctx, app.User, start, end)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			w := csv.NewWriter(out)
			if err := writeRows(w, export.EntryRows(entries)); err != nil {
				return err
			}

			if withSummary {
				result, err := app.Reports.Generate(ctx, app.User, start, end)
				if err != nil {
					return err
				}
				// Blank line between the entry sheet and the summary sheet.
				if err := w.Write([]string{}); err != nil {
					return err
				}
				if err := writeRows(w, export.SummaryRows(result.Summary)); err != nil {
					return err
				}
			}

			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Printf("Wrote %d entries to %s\n", len(entries), outPath)
			}
			return nil
		},
	}

	addRangeFlags(cmd, &fromStr, &toStr, &days)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "Append the summary sheet")

	return cmd
}

// writeRows drains a row iterator into the CSV writer, header first.
func writeRows(w *csv.Writer, rows *export.RowIter) error {
	if err := w.Write(rows.Header()); err != nil {
		return err
	}
	for {
		row, ok := rows.Next()
		if !ok {
			return nil
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
}

func addRangeFlags(cmd *cobra.Command, fromStr, toStr *string, days *int) {
	cmd.Flags().StringVar(fromStr, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(toStr, "to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(days, "days", 7, "Recent days to cover when --from is not given")
}

// resolveRange turns --from/--to/--days flags into a UTC range. The store
// filters by calendar date with both endpoints inclusive, so the --to date
// passes through untouched.
func resolveRange(fromStr, toStr string, days int) (time.Time, time.Time, error) {
	end := time.Now()
	if toStr != "" {
		t, err := parseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = t
	}

	var start time.Time
	if fromStr != "" {
		t, err := parseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
		start = t
	} else {
		// Inclusive dates: --days 7 covers today and the 6 days before.
		start = end.AddDate(0, 0, -(days - 1))
	}

	return start.UTC(), end.UTC(), nil
}
