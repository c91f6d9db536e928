package formatter

import (
	"fmt"
	"strings"

	"github.com/saish1609/timetrack/internal/export"
	"github.com/saish1609/timetrack/internal/report"
)

// FormatReport formats an aggregated report into a styled CLI dashboard
// string: a summary block followed by task, project and day tables.
func FormatReport(res *report.Result) string {
	var b strings.Builder

	period := fmt.Sprintf("%s — %s",
		res.PeriodStart.Format("2006-01-02"), res.PeriodEnd.Format("2006-01-02"))
	b.WriteString(Dim(period) + "\n\n")

	if res.Summary.TotalEntries == 0 {
		b.WriteString(Dim("No time recorded in this period."))
		return RenderBox("Report", b.String())
	}

	b.WriteString(formatReportSummary(res.Summary))

	b.WriteString("\n" + Header("By Task") + "\n")
	taskRows := make([][]string, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		taskRows = append(taskRows, []string{
			Bold(t.TaskTitle),
			StyleFg.Render(t.ProjectName),
			StyleGreen.Render(FormatSeconds(t.TotalSec)),
			FormatSeconds(t.BillableSec),
			fmt.Sprintf("%d", t.Entries),
		})
	}
	b.WriteString(RenderTable(
		[]string{"TASK", "PROJECT", "TIME", "BILLABLE", "ENTRIES"}, taskRows))

	b.WriteString("\n" + Header("By Project") + "\n")
	projRows := make([][]string, 0, len(res.Projects))
	for _, p := range res.Projects {
		projRows = append(projRows, []string{
			Bold(p.ProjectName),
			StyleGreen.Render(FormatSeconds(p.TotalSec)),
			FormatSeconds(p.BillableSec),
			fmt.Sprintf("%d", p.Tasks),
			fmt.Sprintf("%d", p.Entries),
		})
	}
	b.WriteString(RenderTable(
		[]string{"PROJECT", "TIME", "BILLABLE", "TASKS", "ENTRIES"}, projRows))

	b.WriteString("\n" + Header("By Day") + "\n")
	dayRows := make([][]string, 0, len(res.Days))
	for _, d := range res.Days {
		dayRows = append(dayRows, []string{
			StyleFg.Render(d.Date),
			StyleGreen.Render(FormatSeconds(d.TotalSec)),
			fmt.Sprintf("%d", d.Entries),
			fmt.Sprintf("%d", d.TasksWorked),
			fmt.Sprintf("%d", d.ProjectsWorked),
		})
	}
	b.WriteString(RenderTable(
		[]string{"DATE", "TIME", "ENTRIES", "TASKS", "PROJECTS"}, dayRows))

	return RenderBox("Report", b.String())
}

func formatReportSummary(s report.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Total      %s (%s hours)\n",
		StyleGreen.Render(FormatSeconds(s.TotalSec)), export.FormatHours(s.TotalSec)))
	b.WriteString(fmt.Sprintf("Billable   %s\n", FormatSeconds(s.BillableSec)))
	b.WriteString(fmt.Sprintf("Entries    %d across %d tasks, %d projects\n",
		s.TotalEntries, s.UniqueTasks, s.UniqueProjects))
	b.WriteString(fmt.Sprintf("Daily avg  %s\n", FormatSeconds(s.AverageDailySec)))
	if s.MostProductiveDay != "" {
		b.WriteString(fmt.Sprintf("Best day   %s\n", Bold(s.MostProductiveDay)))
	}
	if s.MostWorkedProject != "" {
		b.WriteString(fmt.Sprintf("Top proj   %s\n", Bold(s.MostWorkedProject)))
	}
	return b.String()
}
