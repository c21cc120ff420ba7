package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
)

// SprintRepo handles sprint rows
type SprintRepo struct {
	db *sql.DB
}

// Create inserts a sprint for a group
func (r *SprintRepo) Create(ctx context.Context, groupID int, title string, start, end models.Date) (*models.Sprint, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sprints (group_id, title, start_date, end_date) VALUES (?, ?, ?, ?)`,
		groupID, title, start.String(), end.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Sprint{ID: int(id), Title: title, StartDate: start, EndDate: end}, nil
}

// ListByGroup returns a group's sprints ordered by start date
func (r *SprintRepo) ListByGroup(ctx context.Context, groupID int) ([]models.Sprint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, start_date, end_date
		 FROM sprints
		 WHERE group_id = ?
		 ORDER BY start_date, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	defer rows.Close()

	sprints := []models.Sprint{}
	for rows.Next() {
		var s models.Sprint
		var start, end string
		if err := rows.Scan(&s.ID, &s.Title, &start, &end); err != nil {
			return nil, err
		}
		if s.StartDate, err = parseStoredDate(start); err != nil {
			return nil, err
		}
		if s.EndDate, err = parseStoredDate(end); err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	return sprints, rows.Err()
}

// Exists reports whether a sprint with the ID exists
func (r *SprintRepo) Exists(ctx context.Context, sprintID int) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sprints WHERE id = ?`, sprintID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func parseStoredDate(raw string) (models.Date, error) {
	if raw == "" {
		return models.Date{}, nil
	}
	return models.ParseDate(raw)
}
