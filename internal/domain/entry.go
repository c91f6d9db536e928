package domain

import (
	"errors"
	"time"
)

// ErrNegativeInterval is returned when an entry's end time precedes its start time.
var ErrNegativeInterval = errors.New("end time precedes start time")

// TimeEntry is one continuous work interval. An entry is running while
// EndTime is nil; DurationSec is set only once the entry has ended and
// always equals the whole-second floor of EndTime minus StartTime.
type TimeEntry struct {
	ID        string
	UserID    string
	TaskID    string
	ProjectID *string

	StartTime   time.Time
	EndTime     *time.Time
	DurationSec *int

	Description string
	Notes       string
	Billable    bool

	// Manual marks entries backfilled with both timestamps, as opposed
	// to entries produced by the start/stop timer.
	Manual bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Running reports whether the entry is still open.
func (e *TimeEntry) Running() bool {
	return e.EndTime == nil
}

// Finish closes a running entry at the given instant, deriving the duration.
func (e *TimeEntry) Finish(now time.Time) error {
	if !e.Running() {
		return errors.New("entry already ended")
	}
	end := now.UTC()
	if end.Before(e.StartTime) {
		return ErrNegativeInterval
	}
	sec := int(end.Sub(e.StartTime).Seconds())
	e.EndTime = &end
	e.DurationSec = &sec
	e.UpdatedAt = end
	return nil
}

// RecomputeDuration re-derives DurationSec from the current timestamps.
// Called after a start or end time edit; a no-op while the entry is running.
func (e *TimeEntry) RecomputeDuration() error {
	if e.EndTime == nil {
		e.DurationSec = nil
		return nil
	}
	if e.EndTime.Before(e.StartTime) {
		return ErrNegativeInterval
	}
	sec := int(e.EndTime.Sub(e.StartTime).Seconds())
	e.DurationSec = &sec
	return nil
}

// ElapsedAt returns whole seconds since the entry started, or 0 once ended.
func (e *TimeEntry) ElapsedAt(now time.Time) int {
	if !e.Running() {
		return 0
	}
	sec := int(now.UTC().Sub(e.StartTime).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}

// LoggedSec returns the recorded duration, treating an open entry as 0.
func (e *TimeEntry) LoggedSec() int {
	if e.DurationSec == nil {
		return 0
	}
	return *e.DurationSec
}

// Day returns the UTC calendar date of the entry's start, as YYYY-MM-DD.
func (e *TimeEntry) Day() string {
	return e.StartTime.UTC().Format("2006-01-02")
}
