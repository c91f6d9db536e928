// Package report turns a set of time entries into per-task, per-project and
// per-day breakdowns with an overall summary. Everything here is a pure
// function of its inputs; results are recomputed on every request and the
// input entries are never mutated.
package report

import (
	"sort"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
)

// UnknownTask labels entries whose task reference no longer resolves.
const UnknownTask = "Unknown"

// NoProject is the bucket name for entries without a project.
const NoProject = "No Project"

// Labels resolves task and project IDs to display names. Missing keys fall
// back to UnknownTask / NoProject.
type Labels struct {
	TaskTitles   map[string]string
	ProjectNames map[string]string
}

func (l Labels) taskTitle(id string) string {
	if title, ok := l.TaskTitles[id]; ok && title != "" {
		return title
	}
	return UnknownTask
}

func (l Labels) projectName(id *string) string {
	if id == nil {
		return NoProject
	}
	if name, ok := l.ProjectNames[*id]; ok && name != "" {
		return name
	}
	return NoProject
}

// TaskRow is the per-task breakdown record.
type TaskRow struct {
	TaskID      string
	TaskTitle   string
	ProjectName string
	TotalSec    int
	BillableSec int
	Entries     int
}

// ProjectRow is the per-project breakdown record. ProjectID is nil for the
// NoProject bucket.
type ProjectRow struct {
	ProjectID   *string
	ProjectName string
	TotalSec    int
	BillableSec int
	Tasks       int
	Entries     int
}

// DayRow is the per-day breakdown record. Date is the UTC calendar date in
// YYYY-MM-DD form.
type DayRow struct {
	Date           string
	TotalSec       int
	BillableSec    int
	Entries        int
	TasksWorked    int
	ProjectsWorked int
}

// Summary spans the whole queried period. MostProductiveDay and
// MostWorkedProject are empty when no entries exist.
type Summary struct {
	TotalSec          int
	BillableSec       int
	TotalEntries      int
	UniqueTasks       int
	UniqueProjects    int
	AverageDailySec   int
	MostProductiveDay string
	MostWorkedProject string
}

// Result is the full aggregation output. Breakdowns are ordered
// deterministically: tasks and projects by total time descending (name
// ascending on ties), days chronologically.
type Result struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Summary     Summary
	Tasks       []TaskRow
	Projects    []ProjectRow
	Days        []DayRow
}

type taskAccum struct {
	row TaskRow
}

type projectAccum struct {
	row     ProjectRow
	taskIDs map[string]struct{}
}

type dayAccum struct {
	row      DayRow
	tasks    map[string]struct{}
	projects map[string]struct{}
}

// Aggregate computes the full report for the given entries. A nil or empty
// entry set yields a zero-valued summary and empty breakdowns, never an
// error. Entries with no recorded duration (still running when captured)
// count as 0 seconds toward every sum.
func Aggregate(entries []*domain.TimeEntry, labels Labels, start, end time.Time) *Result {
	res := &Result{PeriodStart: start.UTC(), PeriodEnd: end.UTC()}
	if len(entries) == 0 {
		return res
	}

	tasks := make(map[string]*taskAccum)
	projects := make(map[string]*projectAccum)
	days := make(map[string]*dayAccum)

	for _, e := range entries {
		sec := e.LoggedSec()

		res.Summary.TotalSec += sec
		res.Summary.TotalEntries++
		if e.Billable {
			res.Summary.BillableSec += sec
		}

		ta, ok := tasks[e.TaskID]
		if !ok {
			ta = &taskAccum{row: TaskRow{
				TaskID:      e.TaskID,
				TaskTitle:   labels.taskTitle(e.TaskID),
				ProjectName: labels.projectName(e.ProjectID),
			}}
			tasks[e.TaskID] = ta
		}
		ta.row.TotalSec += sec
		if e.Billable {
			ta.row.BillableSec += sec
		}
		ta.row.Entries++

		projName := labels.projectName(e.ProjectID)
		pa, ok := projects[projName]
		if !ok {
			pa = &projectAccum{
				row:     ProjectRow{ProjectID: e.ProjectID, ProjectName: projName},
				taskIDs: make(map[string]struct{}),
			}
			projects[projName] = pa
		}
		pa.row.TotalSec += sec
		if e.Billable {
			pa.row.BillableSec += sec
		}
		pa.taskIDs[e.TaskID] = struct{}{}
		pa.row.Entries++

		day := e.Day()
		da, ok := days[day]
		if !ok {
			da = &dayAccum{
				row:      DayRow{Date: day},
				tasks:    make(map[string]struct{}),
				projects: make(map[string]struct{}),
			}
			days[day] = da
		}
		da.row.TotalSec += sec
		if e.Billable {
			da.row.BillableSec += sec
		}
		da.row.Entries++
		da.tasks[e.TaskID] = struct{}{}
		if e.ProjectID != nil {
			da.projects[*e.ProjectID] = struct{}{}
		}
	}

	res.Tasks = sortedTaskRows(tasks)
	res.Projects = sortedProjectRows(projects)
	res.Days = sortedDayRows(days)

	res.Summary.UniqueTasks = len(res.Tasks)
	res.Summary.UniqueProjects = len(res.Projects)

	// Average over days that actually have entries; empty days in the
	// requested span do not lower the average.
	res.Summary.AverageDailySec = res.Summary.TotalSec / len(res.Days)

	res.Summary.MostProductiveDay = mostProductiveDay(res.Days)
	res.Summary.MostWorkedProject = mostWorkedProject(res.Projects)

	return res
}

func sortedTaskRows(accums map[string]*taskAccum) []TaskRow {
	rows := make([]TaskRow, 0, len(accums))
	for _, a := range accums {
		rows = append(rows, a.row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSec != rows[j].TotalSec {
			return rows[i].TotalSec > rows[j].TotalSec
		}
		if rows[i].TaskTitle != rows[j].TaskTitle {
			return rows[i].TaskTitle < rows[j].TaskTitle
		}
		return rows[i].TaskID < rows[j].TaskID
	})
	return rows
}

func sortedProjectRows(accums map[string]*projectAccum) []ProjectRow {
	rows := make([]ProjectRow, 0, len(accums))
	for _, a := range accums {
		a.row.Tasks = len(a.taskIDs)
		rows = append(rows, a.row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSec != rows[j].TotalSec {
			return rows[i].TotalSec > rows[j].TotalSec
		}
		return rows[i].ProjectName < rows[j].ProjectName
	})
	return rows
}

func sortedDayRows(accums map[string]*dayAccum) []DayRow {
	rows := make([]DayRow, 0, len(accums))
	for _, a := range accums {
		a.row.TasksWorked = len(a.tasks)
		a.row.ProjectsWorked = len(a.projects)
		rows = append(rows, a.row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows
}

// mostProductiveDay picks the date with the maximum total. Days arrive in
// chronological order, so a strict comparison breaks ties toward the
// earliest date.
func mostProductiveDay(days []DayRow) string {
	best := ""
	bestSec := -1
	for _, d := range days {
		if d.TotalSec > bestSec {
			best = d.Date
			bestSec = d.TotalSec
		}
	}
	return best
}

// mostWorkedProject picks the project with the maximum total. Equal totals
// resolve to the lexicographically smallest name: the input is sorted by
// total descending then name ascending, so the first row wins.
func mostWorkedProject(projects []ProjectRow) string {
	if len(projects) == 0 {
		return ""
	}
	return projects[0].ProjectName
}
