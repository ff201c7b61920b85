package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todoTaskService/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with the given username and PIN.
// Uniqueness of the username is enforced by the table constraint; a duplicate
// insert surfaces as a constraint error (see IsConstraintErr).
func (r *UserRepository) Create(ctx context.Context, username string, pin int32) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (username, pin) VALUES (?, ?)`, username, pin)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, Pin: pin}, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username, pin FROM users WHERE username = ?`, username).Scan(&u.ID, &u.Username, &u.Pin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByCredentials returns the user matching username AND pin exactly.
// A wrong PIN is indistinguishable from a missing username: both return (nil, nil).
func (r *UserRepository) GetByCredentials(ctx context.Context, username string, pin int32) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username, pin FROM users WHERE username = ? AND pin = ?`, username, pin).Scan(&u.ID, &u.Username, &u.Pin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
