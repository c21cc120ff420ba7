package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trackmaster/trackmaster/internal/models"
)

// GroupRepo handles groups and their members
type GroupRepo struct {
	db *sql.DB
}

// CreateGroup inserts an empty group
func (r *GroupRepo) CreateGroup(ctx context.Context, name string) (int, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO student_groups (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// CreateMember inserts a member and adds it to a group
func (r *GroupRepo) CreateMember(ctx context.Context, groupID int, name, lastName string, representative bool) (*models.TeamMember, error) {
	member := &models.TeamMember{Name: name, LastName: lastName}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO members (name, last_name) VALUES (?, ?)`, name, lastName)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		member.ID = int(id)

		_, err = tx.ExecContext(ctx,
			`INSERT INTO group_members (group_id, member_id, representative) VALUES (?, ?, ?)`,
			groupID, member.ID, representative,
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// Details returns the group with its representative and members
func (r *GroupRepo) Details(ctx context.Context, groupID int) (*models.Group, error) {
	group := &models.Group{ID: groupID, Members: []models.TeamMember{}}
	err := r.db.QueryRowContext(ctx, `SELECT name FROM student_groups WHERE id = ?`, groupID).Scan(&group.Name)
	if err != nil {
		return nil, notFound(err, "group", groupID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.name, m.last_name, gm.representative
		 FROM members m
		 JOIN group_members gm ON gm.member_id = m.id
		 WHERE gm.group_id = ?
		 ORDER BY m.id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TeamMember
		var representative bool
		if err := rows.Scan(&m.ID, &m.Name, &m.LastName, &representative); err != nil {
			return nil, err
		}
		if representative {
			rep := m
			group.Representative = &rep
			continue
		}
		group.Members = append(group.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return group, nil
}
