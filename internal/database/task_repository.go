package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
)

// TaskRepo handles tasks with their assignees and resources
type TaskRepo struct {
	db *sql.DB
}

// ============================================================================
// Task Operations
// ============================================================================

// ListBySprint returns every task of a sprint in creation order
func (r *TaskRepo) ListBySprint(ctx context.Context, sprintID int) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sprint_id, title, description, status, reviewed
		 FROM tasks
		 WHERE sprint_id = ?
		 ORDER BY id`,
		sprintID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.SprintID, &task.Title, &task.Description, &task.Status, &task.Reviewed); err != nil {
			rows.Close()
			return nil, err
		}
		tasks = append(tasks, task)
	}
	// close before the follow-up queries: the pool has a single connection
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if err := loadRelations(ctx, r.db, task); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// Get returns one task
func (r *TaskRepo) Get(ctx context.Context, taskID int) (*models.Task, error) {
	return getTask(ctx, r.db, taskID)
}

// Create inserts a todo task with its assignees
func (r *TaskRepo) Create(ctx context.Context, sprintID int, title, description string, assignedTo []int) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (sprint_id, title, description, status) VALUES (?, ?, ?, ?)`,
			sprintID, title, description, models.StatusTodo,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if err := replaceAssignees(ctx, tx, int(id), assignedTo); err != nil {
			return err
		}
		task, err = getTask(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update replaces a task's fields and assignees. Locked tasks are refused.
func (r *TaskRepo) Update(ctx context.Context, taskID int, title, description string, assignedTo []int, status models.Status) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureUnlocked(ctx, tx, taskID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, status = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			title, description, status, taskID,
		)
		if err != nil {
			return err
		}
		if err := replaceAssignees(ctx, tx, taskID, assignedTo); err != nil {
			return err
		}
		task, err = getTask(ctx, tx, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task. Locked tasks are refused.
func (r *TaskRepo) Delete(ctx context.Context, taskID int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureUnlocked(ctx, tx, taskID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
		return err
	})
}

// SetReviewed marks a task as reviewed (or not) by a teacher
func (r *TaskRepo) SetReviewed(ctx context.Context, taskID int, reviewed bool) (*models.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET reviewed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		reviewed, taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to review task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	return getTask(ctx, r.db, taskID)
}

// AddResource attaches a file or link to a task
func (r *TaskRepo) AddResource(ctx context.Context, taskID int, res models.Resource) error {
	if _, err := models.StyleFor(res.Type); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_resources (task_id, type, name, url) VALUES (?, ?, ?, ?)`,
		taskID, res.Type, res.Name, res.URL,
	)
	if err != nil {
		return fmt.Errorf("failed to add resource: %w", err)
	}
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func getTask(ctx context.Context, q queryer, taskID int) (*models.Task, error) {
	task := &models.Task{}
	err := q.QueryRowContext(ctx,
		`SELECT id, sprint_id, title, description, status, reviewed FROM tasks WHERE id = ?`,
		taskID,
	).Scan(&task.ID, &task.SprintID, &task.Title, &task.Description, &task.Status, &task.Reviewed)
	if err != nil {
		return nil, notFound(err, "task", taskID)
	}
	if err := loadRelations(ctx, q, task); err != nil {
		return nil, err
	}
	return task, nil
}

func ensureUnlocked(ctx context.Context, q queryer, taskID int) error {
	var status models.Status
	var reviewed bool
	err := q.QueryRowContext(ctx, `SELECT status, reviewed FROM tasks WHERE id = ?`, taskID).Scan(&status, &reviewed)
	if err != nil {
		return notFound(err, "task", taskID)
	}
	if reviewed && status == models.StatusDone {
		return fmt.Errorf("task %d: %w", taskID, ErrTaskLocked)
	}
	return nil
}

func replaceAssignees(ctx context.Context, tx *sql.Tx, taskID int, assignedTo []int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = ?`, taskID); err != nil {
		return err
	}
	for pos, memberID := range assignedTo {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_assignees (task_id, member_id, position) VALUES (?, ?, ?)`,
			taskID, memberID, pos,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func loadRelations(ctx context.Context, q queryer, task *models.Task) error {
	rows, err := q.QueryContext(ctx,
		`SELECT member_id FROM task_assignees WHERE task_id = ? ORDER BY position`,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load assignees: %w", err)
	}
	task.AssignedTo = models.Assignees{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		task.AssignedTo = append(task.AssignedTo, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.QueryContext(ctx,
		`SELECT type, name, url FROM task_resources WHERE task_id = ? ORDER BY id`,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}
	defer rows.Close()
	task.Resources = []models.Resource{}
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.Type, &res.Name, &res.URL); err != nil {
			return err
		}
		task.Resources = append(task.Resources, res)
	}
	return rows.Err()
}
