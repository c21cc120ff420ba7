package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories.
type Repository struct {
	Groups  *GroupRepo
	Sprints *SprintRepo
	Tasks   *TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Groups:  &GroupRepo{db: db},
		Sprints: &SprintRepo{db: db},
		Tasks:   &TaskRepo{db: db},
	}
}
