package formatter

import (
	"testing"
	"time"

	"github.com/saish1609/timetrack/internal/report"
	"github.com/saish1609/timetrack/internal/service"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *report.Result {
	return &report.Result{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Summary: report.Summary{
			TotalSec:          9000,
			BillableSec:       5400,
			TotalEntries:      3,
			UniqueTasks:       2,
			UniqueProjects:    1,
			AverageDailySec:   4500,
			MostProductiveDay: "2024-01-02",
			MostWorkedProject: "Client A",
		},
		Tasks: []report.TaskRow{
			{TaskID: "t1", TaskTitle: "Design review", ProjectName: "Client A", TotalSec: 5400, BillableSec: 5400, Entries: 2},
			{TaskID: "t2", TaskTitle: "Email", ProjectName: "No Project", TotalSec: 3600, Entries: 1},
		},
		Projects: []report.ProjectRow{
			{ProjectName: "Client A", TotalSec: 5400, BillableSec: 5400, Tasks: 1, Entries: 2},
		},
		Days: []report.DayRow{
			{Date: "2024-01-02", TotalSec: 9000, Entries: 3, TasksWorked: 2, ProjectsWorked: 1},
		},
	}
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(sampleReport())

	assert.Contains(t, out, "2024-01-01 — 2024-01-07")
	assert.Contains(t, out, "Design review")
	assert.Contains(t, out, "Client A")
	assert.Contains(t, out, "No Project")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "2.50 hours")
	assert.Contains(t, out, "3 across 2 tasks, 1 projects")
}

func TestFormatReport_Empty(t *testing.T) {
	res := &report.Result{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
	out := FormatReport(res)
	assert.Contains(t, out, "No time recorded")
}

func TestFormatDailyStats(t *testing.T) {
	out := FormatDailyStats(&service.DailyStats{Date: "2024-01-05", TotalSec: 5400, Running: true})
	assert.Contains(t, out, "2024-01-05")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "timer running")

	out = FormatDailyStats(&service.DailyStats{Date: "2024-01-05", TotalSec: 0})
	assert.NotContains(t, out, "timer running")
}
