package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseadmin/dashboard/internal/models"
)

// syncRunRepository implements SyncRunRepository on MySQL
type syncRunRepository struct {
	db *sql.DB
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *sql.DB) *syncRunRepository {
	return &syncRunRepository{
		db: db,
	}
}

// Create persists a sync run and sets its ID
func (r *syncRunRepository) Create(ctx context.Context, run *models.SyncRun) error {
	query := `
		INSERT INTO sync_runs (course_id, mode, operations, failures, converged, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		run.CourseID.String(),
		string(run.Mode),
		run.Operations,
		run.Failures,
		run.Converged,
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	run.ID = id

	return nil
}

// GetRecentByCourse retrieves the latest sync runs of a course, newest first
//
// "limit" parameter is used to specify the maximum number of runs to return.
func (r *syncRunRepository) GetRecentByCourse(ctx context.Context, courseID models.ID, limit int) ([]models.SyncRun, error) {
	query := `
		SELECT id, course_id, mode, operations, failures, converged, error, created_at
		FROM sync_runs
		WHERE course_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, courseID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	runs := []models.SyncRun{}
	for rows.Next() {
		var run models.SyncRun
		var courseIDValue, mode string
		if err := rows.Scan(&run.ID, &courseIDValue, &mode, &run.Operations, &run.Failures, &run.Converged, &run.Error, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}
		run.CourseID = models.ID(courseIDValue)
		run.Mode = models.SyncMode(mode)
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return runs, nil
}
