// Package manager implements the data-access coordinator: a single worker
// that owns the only storage connection and serializes every read and write
// behind an ordered message queue. Handlers talk to it exclusively through
// Submit and the per-request reply channels.
package manager

import (
	"context"
	"database/sql"
	"errors"

	"todoTaskService/internal/auth"
	"todoTaskService/internal/logging"
	"todoTaskService/models"
	"todoTaskService/repository"
)

// inboxSize bounds the request queue. Producers block (with their context)
// when it is full rather than dropping messages.
const inboxSize = 32

var (
	errSignUpFailed   = errors.New("error while inserting user into database")
	errSignInFailed   = errors.New("error while signing in")
	errGetTodosFailed = errors.New("error while getting todos")
)

// ErrStopped is returned by Submit once the worker loop has exited.
var ErrStopped = errors.New("manager stopped")

type Manager struct {
	users  repository.UserRepositoryI
	todos  repository.TodoRepositoryI
	tokens *auth.TokenCodec
	log    logging.Logger
	inbox  chan Message
	done   chan struct{}
}

// New builds a coordinator over the given repositories. In production both
// repositories sit on the process's single dedicated connection (see
// db.Acquire); the coordinator is its only user once Run starts.
func New(users repository.UserRepositoryI, todos repository.TodoRepositoryI, tokens *auth.TokenCodec, log logging.Logger) *Manager {
	return &Manager{
		users:  users,
		todos:  todos,
		tokens: tokens,
		log:    log.With("component", "manager"),
		inbox:  make(chan Message, inboxSize),
		done:   make(chan struct{}),
	}
}

// Done returns a channel that is closed when Run has returned. Handlers
// awaiting a reply select on it so a request queued behind a dying
// coordinator fails instead of blocking forever.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Submit enqueues a message for the worker loop. It blocks while the inbox is
// full; it fails with ErrStopped once the worker has exited and with the
// context error if the caller gives up first.
func (m *Manager) Submit(ctx context.Context, msg Message) error {
	select {
	case <-m.done:
		return ErrStopped
	default:
	}
	select {
	case m.inbox <- msg:
		return nil
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run is the single worker loop. It processes one message at a time, fully,
// before dequeuing the next; a failed operation is replied to and the loop
// carries on. Run returns when ctx is cancelled, closing Done; messages still
// queued at that point are never processed and their callers observe Done.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)
	for {
		// Cancellation wins over queued work.
		select {
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-ctx.Done():
			return
		case msg := <-m.inbox:
			switch msg := msg.(type) {
			case SignUp:
				m.handleSignUp(ctx, msg)
			case SignIn:
				m.handleSignIn(ctx, msg)
			case GetTodos:
				m.handleGetTodos(msg)
			default:
				m.log.Error(ctx, "unknown message variant", "message", msg)
			}
		}
	}
}

func (m *Manager) handleSignUp(ctx context.Context, msg SignUp) {
	var res SignUpResult
	u, err := m.users.Create(ctx, msg.Username, msg.Pin)
	switch {
	case err == nil:
		m.log.Info(ctx, "signed up", "username", u.Username)
		res.User = u
	case repository.IsConstraintErr(err):
		// Constraint messages are user-facing; pass them through verbatim.
		m.log.Error(ctx, "sign up constraint violation", "username", msg.Username, "err", err)
		res.Err = err
	default:
		m.log.Error(ctx, "sign up storage failure", "username", msg.Username, "err", err)
		res.Err = errSignUpFailed
	}
	reply(ctx, m.log, msg.Reply, res)
}

func (m *Manager) handleSignIn(ctx context.Context, msg SignIn) {
	var res SignInResult
	u, err := m.users.GetByCredentials(ctx, msg.Username, msg.Pin)
	switch {
	case err != nil:
		m.log.Error(ctx, "sign in storage failure", "username", msg.Username, "err", err)
		res.Err = errSignInFailed
	case u == nil:
		// Wrong PIN and unknown username are indistinguishable on purpose.
		m.log.Info(ctx, "sign in no match", "username", msg.Username)
		res.Err = sql.ErrNoRows
	default:
		token, err := m.tokens.Sign(u.Username)
		if err != nil {
			m.log.Error(ctx, "token signing failure", "username", u.Username, "err", err)
			res.Err = errSignInFailed
		} else {
			res.Token = token
		}
	}
	reply(ctx, m.log, msg.Reply, res)
}

func (m *Manager) handleGetTodos(msg GetTodos) {
	ctx := msg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	defer close(msg.Reply)

	err := m.todos.StreamByUsername(ctx, msg.Username, func(item *models.TodoItem) error {
		select {
		case msg.Reply <- TodoResult{Item: item}:
			return nil
		case <-ctx.Done():
			// Caller is gone; stop forwarding instead of blocking the loop.
			return ctx.Err()
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		m.log.Error(ctx, "get todos storage failure", "username", msg.Username, "err", err)
		// Terminate the stream with an explicit error item rather than
		// truncating it silently.
		select {
		case msg.Reply <- TodoResult{Err: errGetTodosFailed}:
		case <-ctx.Done():
		}
	}
}

// reply delivers a one-shot result without ever blocking the worker. Reply
// channels are buffered by their creators; if the receiver vanished and the
// buffer is gone with it, the result is logged and dropped.
func reply[T any](ctx context.Context, log logging.Logger, ch chan<- T, res T) {
	select {
	case ch <- res:
	default:
		log.Warn(ctx, "reply channel abandoned, dropping result")
	}
}
