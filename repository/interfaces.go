package repository

import (
	"context"
	"database/sql"

	"todoTaskService/models"
)

// DBTX is the subset of database/sql the repositories need. Both *sql.DB and
// *sql.Conn satisfy it, so the same repositories run against the pool in tests
// and against the coordinator's single dedicated connection in production.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username string, pin int32) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByCredentials(ctx context.Context, username string, pin int32) (*models.User, error)
}

// TodoRepositoryI defines operations on TodoItem entities.
type TodoRepositoryI interface {
	Create(ctx context.Context, userID int64, description string, status models.TodoStatus) (*models.TodoItem, error)
	StreamByUsername(ctx context.Context, username string, fn func(*models.TodoItem) error) error
	ListByUsername(ctx context.Context, username string) ([]models.TodoItem, error)
}
