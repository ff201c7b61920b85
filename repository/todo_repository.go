package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todoTaskService/models"
)

type TodoRepository struct {
	db DBTX
}

func NewTodoRepository(db DBTX) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new todo item owned by userID and returns it with its
// generated ID.
func (r *TodoRepository) Create(ctx context.Context, userID int64, description string, status models.TodoStatus) (*models.TodoItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if status == "" {
		status = models.TodoStatusPending
	}
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `INSERT INTO todos (id, user_id, description, status) VALUES (?, ?, ?, ?)`,
		id, userID, description, string(status))
	if err != nil {
		return nil, err
	}
	return &models.TodoItem{ID: id, Description: description, Status: status}, nil
}

// StreamByUsername invokes fn for every todo row owned by username, in
// storage-return order. Iteration stops at the first error from fn or the
// row cursor. No timeout is applied; the caller's context governs the scan.
func (r *TodoRepository) StreamByUsername(ctx context.Context, username string, fn func(*models.TodoItem) error) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.description, t.status FROM todos t LEFT JOIN users u ON t.user_id = u.id WHERE u.username = ? ORDER BY t.rowid`,
		username)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Status); err != nil {
			return err
		}
		if err := fn(&item); err != nil {
			return err
		}
	}
	return rows.Err()
}

// ListByUsername collects the user's todos into a slice. Convenience wrapper
// over StreamByUsername, mainly for tests and seeding checks.
func (r *TodoRepository) ListByUsername(ctx context.Context, username string) ([]models.TodoItem, error) {
	var out []models.TodoItem
	err := r.StreamByUsername(ctx, username, func(item *models.TodoItem) error {
		out = append(out, *item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
