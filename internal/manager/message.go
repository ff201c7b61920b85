package manager

import (
	"context"

	"todoTaskService/models"
)

// Message is the closed set of requests the coordinator accepts. Each variant
// carries its input payload and the reply channel the caller waits on. After
// Submit, the coordinator owns the message; the caller keeps only the read end
// of the reply channel.
type Message interface {
	isMessage()
}

// SignUp asks the coordinator to insert a new credential.
type SignUp struct {
	Username string
	Pin      int32
	Reply    chan<- SignUpResult
}

// SignIn asks the coordinator to check a credential and mint a session token.
type SignIn struct {
	Username string
	Pin      int32
	Reply    chan<- SignInResult
}

// GetTodos asks the coordinator to stream the user's todo rows onto Reply.
// The coordinator closes Reply when the row stream is exhausted; Ctx bounds
// forwarding so an abandoned caller cannot block the worker loop.
type GetTodos struct {
	Ctx      context.Context
	Username string
	Reply    chan<- TodoResult
}

func (SignUp) isMessage()   {}
func (SignIn) isMessage()   {}
func (GetTodos) isMessage() {}

// SignUpResult is the one-shot reply to a SignUp message.
type SignUpResult struct {
	User *models.User
	Err  error
}

// SignInResult is the one-shot reply to a SignIn message.
type SignInResult struct {
	Token string
	Err   error
}

// TodoResult is one element of a GetTodos reply stream: either a row or a
// terminal error.
type TodoResult struct {
	Item *models.TodoItem
	Err  error
}
