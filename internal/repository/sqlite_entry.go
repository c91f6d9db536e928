package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/domain"
)

// entryColumns is the canonical SELECT column list for time_entries.
const entryColumns = `id, user_id, task_id, project_id, start_time, end_time, duration_sec,
		description, notes, billable, manual, created_at, updated_at`

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo. The DBTX may be a
// *sql.DB or a *sql.Tx for transactional composition.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.TaskID,
		nullableStrToValue(e.ProjectID),
		e.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(e.EndTime, time.RFC3339),
		nullableIntToValue(e.DurationSec),
		e.Description,
		e.Notes,
		boolToInt(e.Billable),
		boolToInt(e.Manual),
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, userID, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) GetRunning(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ? AND end_time IS NULL`
	row := r.db.QueryRowContext(ctx, query, userID)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ?
		  AND date(start_time) >= ?
		  AND date(start_time) <= ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		userID,
		start.UTC().Format("2006-01-02"),
		end.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("listing entries by date range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByTask(ctx context.Context, userID, taskID string) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ? AND task_id = ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing entries by task: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	query := `UPDATE time_entries SET
		task_id = ?, project_id = ?, start_time = ?, end_time = ?, duration_sec = ?,
		description = ?, notes = ?, billable = ?, manual = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.TaskID,
		nullableStrToValue(e.ProjectID),
		e.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(e.EndTime, time.RFC3339),
		nullableIntToValue(e.DurationSec),
		e.Description,
		e.Notes,
		boolToInt(e.Billable),
		boolToInt(e.Manual),
		time.Now().UTC().Format(time.RFC3339),
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("time entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM time_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) DailyTotal(ctx context.Context, userID, day string) (int, error) {
	query := `SELECT COALESCE(SUM(duration_sec), 0) FROM time_entries
		WHERE user_id = ? AND date(start_time) = ? AND duration_sec IS NOT NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, query, userID, day).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing daily total: %w", err)
	}
	return total, nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var projectID, endTime sql.NullString
	var durationSec sql.NullInt64
	var startStr, createdStr, updatedStr string
	var billable, manual int

	err := row.Scan(
		&e.ID, &e.UserID, &e.TaskID, &projectID, &startStr, &endTime, &durationSec,
		&e.Description, &e.Notes, &billable, &manual, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	return r.populateEntry(&e, projectID, endTime, durationSec, startStr, createdStr, updatedStr, billable, manual)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var projectID, endTime sql.NullString
		var durationSec sql.NullInt64
		var startStr, createdStr, updatedStr string
		var billable, manual int

		err := rows.Scan(
			&e.ID, &e.UserID, &e.TaskID, &projectID, &startStr, &endTime, &durationSec,
			&e.Description, &e.Notes, &billable, &manual, &createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}

		entry, popErr := r.populateEntry(&e, projectID, endTime, durationSec, startStr, createdStr, updatedStr, billable, manual)
		if popErr != nil {
			return nil, popErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields on a TimeEntry after scanning raw values.
func (r *SQLiteEntryRepo) populateEntry(e *domain.TimeEntry, projectID, endTime sql.NullString,
	durationSec sql.NullInt64, startStr, createdStr, updatedStr string, billable, manual int) (*domain.TimeEntry, error) {

	var parseErr error
	e.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	e.ProjectID = nullStrPtr(projectID)
	e.EndTime = parseNullableTime(endTime, time.RFC3339)
	e.DurationSec = nullIntPtr(durationSec)
	e.Billable = intToBool(billable)
	e.Manual = intToBool(manual)

	return e, nil
}
