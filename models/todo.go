package models

// TodoStatus represents the current progress of a todo item.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in progress"
	TodoStatusDone       TodoStatus = "done"
)

// TodoItem is a single entry on a user's task list. The owning user is
// implicit via the `user_id` column and never leaves the storage layer.
type TodoItem struct {
	ID          string     `db:"id" json:"id"`
	Description string     `db:"description" json:"description"`
	Status      TodoStatus `db:"status" json:"status"`
}
