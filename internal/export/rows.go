// Package export renders entries and report summaries as tabular rows for
// downstream CSV/spreadsheet writers. Iterators are lazy, finite and
// single-pass; callers needing to iterate again must request a new one.
package export

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/saish1609/timetrack/internal/report"
)

// Entry is a time entry resolved with its display labels, ready to render.
type Entry struct {
	Start       time.Time
	End         *time.Time
	DurationSec int
	TaskTitle   string
	ProjectName string
	Description string
	Notes       string
	Billable    bool
}

// entryHeader is the column layout consumed by spreadsheet writers.
var entryHeader = []string{
	"Date", "Start Time", "End Time", "Duration (hours)",
	"Task", "Project", "Description", "Notes", "Billable",
}

// summaryHeader is the column layout of the summary sheet.
var summaryHeader = []string{"Metric", "Value"}

// RowIter yields rows one at a time. Next returns false once exhausted;
// the iterator never restarts.
type RowIter struct {
	header []string
	next   func() ([]string, bool)
}

// Header returns the column names for the rows this iterator yields.
func (it *RowIter) Header() []string {
	return it.header
}

// Next returns the next row, or false when the sequence is exhausted.
func (it *RowIter) Next() ([]string, bool) {
	return it.next()
}

// EntryRows returns a row iterator over the given entries, in input order.
// A running entry renders with a blank end time and zero duration.
func EntryRows(entries []Entry) *RowIter {
	i := 0
	return &RowIter{
		header: entryHeader,
		next: func() ([]string, bool) {
			if i >= len(entries) {
				return nil, false
			}
			e := entries[i]
			i++

			end := ""
			if e.End != nil {
				end = e.End.UTC().Format("15:04:05")
			}

			return []string{
				e.Start.UTC().Format("2006-01-02"),
				e.Start.UTC().Format("15:04:05"),
				end,
				FormatHours(e.DurationSec),
				e.TaskTitle,
				e.ProjectName,
				e.Description,
				e.Notes,
				yesNo(e.Billable),
			}, true
		},
	}
}

// summaryField is one label/value pair of the summary sheet. Fields with
// absent values are skipped entirely.
type summaryField struct {
	name  string
	value string
	skip  bool
}

// SummaryRows returns a label/value iterator over the report summary.
// Labels derive from the field names: underscores become spaces and each
// word is title-cased.
func SummaryRows(s report.Summary) *RowIter {
	fields := []summaryField{
		{name: "total_time", value: strconv.Itoa(s.TotalSec)},
		{name: "billable_time", value: strconv.Itoa(s.BillableSec)},
		{name: "total_entries", value: strconv.Itoa(s.TotalEntries)},
		{name: "unique_tasks", value: strconv.Itoa(s.UniqueTasks)},
		{name: "unique_projects", value: strconv.Itoa(s.UniqueProjects)},
		{name: "average_daily_time", value: strconv.Itoa(s.AverageDailySec)},
		{name: "most_productive_day", value: s.MostProductiveDay, skip: s.MostProductiveDay == ""},
		{name: "most_worked_project", value: s.MostWorkedProject, skip: s.MostWorkedProject == ""},
	}

	i := 0
	return &RowIter{
		header: summaryHeader,
		next: func() ([]string, bool) {
			for i < len(fields) {
				f := fields[i]
				i++
				if f.skip {
					continue
				}
				return []string{labelFor(f.name), f.value}, true
			}
			return nil, false
		},
	}
}

// FormatHours renders seconds as hours with two decimal places.
func FormatHours(sec int) string {
	hours := math.Round(float64(sec)/3600*100) / 100
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

// labelFor turns a snake_case field name into a spaced Title Case label.
func labelFor(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
