package models

// User represents a registered account.
// It maps to the `users` table in SQLite. The PIN is the 4-digit numeric
// credential checked on sign-in.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Pin      int32  `db:"pin" json:"-"`
}
