package cli

import (
	"context"
	"testing"
	"time"

	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange_Explicit(t *testing.T) {
	start, end, err := resolveRange("2024-01-01", "2024-01-07", 7)
	require.NoError(t, err)

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).UTC()
	assert.Equal(t, wantStart, start)

	// The to-date is already inclusive downstream, so it maps straight
	// to Jan 7 rather than being bumped a day.
	wantEnd := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local).UTC()
	assert.Equal(t, wantEnd, end)
}

func TestResolveRange_DaysDefault(t *testing.T) {
	start, end, err := resolveRange("", "", 14)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), end, time.Minute)
	// 14 days means today plus the 13 before it.
	assert.WithinDuration(t, end.AddDate(0, 0, -13), start, time.Minute)
}

func TestResolveRange_ToDateBoundary(t *testing.T) {
	app, tasks := newTestApp(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Boundary task")
	require.NoError(t, tasks.Create(ctx, task))

	logEntry := func(start time.Time) string {
		end := start.Add(time.Hour)
		e := &domain.TimeEntry{
			UserID:    app.User,
			TaskID:    task.ID,
			StartTime: start,
			EndTime:   &end,
		}
		require.NoError(t, app.Entries.Backfill(ctx, e))
		return e.ID
	}
	onToDate := logEntry(time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC))
	dayAfter := logEntry(time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC))

	start, end, err := resolveRange("2024-01-01", "2024-01-07", 7)
	require.NoError(t, err)

	entries, err := app.Entries.ListByDateRange(ctx, app.User, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, onToDate, entries[0].ID)
	assert.NotEqual(t, dayAfter, entries[0].ID)
}

func TestResolveRange_BadDates(t *testing.T) {
	_, _, err := resolveRange("not-a-date", "", 7)
	assert.Error(t, err)

	_, _, err = resolveRange("", "01/02/2024", 7)
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2024-03-01 09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local), got)

	got, err = parseTimestamp("2024-03-01T09:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))

	_, err = parseTimestamp("yesterday")
	assert.Error(t, err)
}
