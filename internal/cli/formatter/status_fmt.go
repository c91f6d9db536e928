package formatter

import (
	"fmt"
	"strings"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/service"
)

// FormatTimerStatus formats a timer status query into a styled box.
func FormatTimerStatus(status *service.TimerStatus, taskTitle string) string {
	var b strings.Builder

	if !status.Running {
		b.WriteString(Dim("No timer running.") + "\n")
		b.WriteString(Dim("Start one with: timetrack start <task-id>"))
		return RenderBox("Timer", b.String())
	}

	e := status.Entry
	title := domain.CoalesceStr(taskTitle, e.TaskID)

	b.WriteString(StyleGreen.Render("● RUNNING") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(title), TruncID(e.TaskID)))
	if e.Description != "" {
		b.WriteString(Dim(e.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Started  %s %s\n",
		HumanDate(e.StartTime), StyleFg.Render(e.StartTime.Local().Format("15:04"))))
	b.WriteString(fmt.Sprintf("Elapsed  %s", StyleYellow.Render(FormatClock(status.ElapsedSec))))

	return RenderBox("Timer", b.String())
}

// FormatDailyStats renders the one-line daily total.
func FormatDailyStats(stats *service.DailyStats) string {
	line := fmt.Sprintf("%s  %s", Bold(stats.Date), StyleGreen.Render(FormatSeconds(stats.TotalSec)))
	if stats.Running {
		line += Dim("  (timer running, not counted until stopped)")
	}
	return line
}
