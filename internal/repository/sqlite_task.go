package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, project_id, parent_id, title, description, status, priority,
		billable, estimated_min, due_date, completed_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		nullableStrToValue(t.ProjectID),
		nullableStrToValue(t.ParentID),
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		boolToInt(t.Billable),
		nullableIntToValue(t.EstimatedMin),
		nullableTimeToString(t.DueDate, time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	if !includeArchived {
		query += ` AND status != 'archived'`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		project_id = ?, parent_id = ?, title = ?, description = ?, status = ?, priority = ?,
		billable = ?, estimated_min = ?, due_date = ?, completed_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(t.ProjectID),
		nullableStrToValue(t.ParentID),
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		boolToInt(t.Billable),
		nullableIntToValue(t.EstimatedMin),
		nullableTimeToString(t.DueDate, time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var projectID, parentID, dueDate, completedAt sql.NullString
	var estimatedMin sql.NullInt64
	var status, priority, createdStr, updatedStr string
	var billable int

	err := row.Scan(
		&t.ID, &t.UserID, &projectID, &parentID, &t.Title, &t.Description,
		&status, &priority, &billable, &estimatedMin, &dueDate, &completedAt,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, projectID, parentID, dueDate, completedAt, estimatedMin,
		status, priority, createdStr, updatedStr, billable)
}

func (r *SQLiteTaskRepo) scanTaskRow(rows *sql.Rows) (*domain.Task, error) {
	var t domain.Task
	var projectID, parentID, dueDate, completedAt sql.NullString
	var estimatedMin sql.NullInt64
	var status, priority, createdStr, updatedStr string
	var billable int

	err := rows.Scan(
		&t.ID, &t.UserID, &projectID, &parentID, &t.Title, &t.Description,
		&status, &priority, &billable, &estimatedMin, &dueDate, &completedAt,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning task row: %w", err)
	}

	return r.populateTask(&t, projectID, parentID, dueDate, completedAt, estimatedMin,
		status, priority, createdStr, updatedStr, billable)
}

func (r *SQLiteTaskRepo) populateTask(t *domain.Task, projectID, parentID, dueDate, completedAt sql.NullString,
	estimatedMin sql.NullInt64, status, priority, createdStr, updatedStr string, billable int) (*domain.Task, error) {

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	t.ProjectID = nullStrPtr(projectID)
	t.ParentID = nullStrPtr(parentID)
	t.EstimatedMin = nullIntPtr(estimatedMin)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	t.Billable = intToBool(billable)

	return t, nil
}
