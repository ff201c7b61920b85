package grpcserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "todoTaskService/api/auth/v1"
	"todoTaskService/internal/auth"
	"todoTaskService/internal/logging"
	"todoTaskService/internal/manager"
	"todoTaskService/internal/testutil"
	"todoTaskService/models"
	"todoTaskService/repository"
)

const testSecret = "test-secret"

type serverEnv struct {
	codec *auth.TokenCodec
	auth  *AuthServer
	todo  *TodoServer
	mgr   *manager.Manager
	users *repository.UserRepository
	todos *repository.TodoRepository
	stop  context.CancelFunc
}

func newServerEnv(t *testing.T, name string) *serverEnv {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	codec, err := auth.NewTokenCodec(testSecret)
	if err != nil {
		t.Fatalf("token codec: %v", err)
	}
	logger := logging.NewDiscard()
	users := repository.NewUserRepository(d)
	todos := repository.NewTodoRepository(d)
	mgr := manager.New(users, todos, codec, logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go mgr.Run(ctx)

	return &serverEnv{
		codec: codec,
		auth:  &AuthServer{Manager: mgr, Log: logger},
		todo:  &TodoServer{Manager: mgr, Log: logger},
		mgr:   mgr,
		users: users,
		todos: todos,
		stop:  cancel,
	}
}

func TestSignUp_InvalidPinRejectedBeforeStorage(t *testing.T) {
	env := newServerEnv(t, "srv_invalid_pin")
	ctx := context.Background()

	for _, pin := range []int32{0, -1, 999, 10000, 123456} {
		_, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "alice", Pin: pin})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("pin %d: expected InvalidArgument, got %v", pin, err)
		}
	}

	// No row may ever be inserted for an invalid PIN.
	u, err := env.users.GetByUsername(ctx, "alice")
	if err != nil || u != nil {
		t.Fatalf("expected no row for rejected sign up, got %+v err=%v", u, err)
	}
}

func TestSignUp_Succeeds(t *testing.T) {
	env := newServerEnv(t, "srv_signup_ok")

	resp, err := env.auth.SignUp(context.Background(), &authv1.SignUpRequest{Username: "alice", Pin: 4242})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if !resp.GetSuccess() || resp.GetMessage() != "Signed up successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSignUp_DuplicateSurfacesConstraintMessage(t *testing.T) {
	env := newServerEnv(t, "srv_signup_dup")
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "alice", Pin: 4242}); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	_, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "alice", Pin: 9999})
	if status.Code(err) != codes.Aborted {
		t.Fatalf("expected Aborted, got %v", err)
	}
	if !strings.Contains(status.Convert(err).Message(), "UNIQUE constraint failed: users.username") {
		t.Fatalf("constraint reason not surfaced: %v", err)
	}
}

func TestSignIn_ReturnsVerifiableToken(t *testing.T) {
	env := newServerEnv(t, "srv_signin_ok")
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "alice", Pin: 4242}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	resp, err := env.auth.SignIn(ctx, &authv1.SignInRequest{Username: "alice", Pin: 4242})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	username, err := env.codec.Verify(resp.GetToken())
	if err != nil || username != "alice" {
		t.Fatalf("token does not verify back to alice: %v %q", err, username)
	}
}

func TestSignIn_NoMatchIsUnauthenticated(t *testing.T) {
	env := newServerEnv(t, "srv_signin_bad")
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "alice", Pin: 4242}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Wrong PIN
	_, err := env.auth.SignIn(ctx, &authv1.SignInRequest{Username: "alice", Pin: 1234})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("wrong pin: expected Unauthenticated, got %v", err)
	}
	// Unknown username
	_, err = env.auth.SignIn(ctx, &authv1.SignInRequest{Username: "nobody", Pin: 4242})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("unknown user: expected Unauthenticated, got %v", err)
	}
}

func TestSignUp_AbortsWhenCoordinatorStopped(t *testing.T) {
	env := newServerEnv(t, "srv_signup_stopped")

	env.stop()
	<-env.mgr.Done()

	_, err := env.auth.SignUp(context.Background(), &authv1.SignUpRequest{Username: "alice", Pin: 4242})
	if status.Code(err) != codes.Aborted {
		t.Fatalf("expected Aborted, got %v", err)
	}
	_, err = env.auth.SignIn(context.Background(), &authv1.SignInRequest{Username: "alice", Pin: 4242})
	if status.Code(err) != codes.Aborted {
		t.Fatalf("sign in: expected Aborted, got %v", err)
	}
}

func TestSignUp_AbortsWhenQueuedBehindDyingCoordinator(t *testing.T) {
	env := newServerEnv(t, "srv_signup_dying")
	ctx := context.Background()

	alice, err := env.users.Create(ctx, "alice", 4242)
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if _, err := env.todos.Create(ctx, alice.ID, "buy milk", models.TodoStatusPending); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	// Wedge the worker mid-stream on an unread, unbuffered row channel so the
	// next request stays queued.
	wedgeCtx, unwedge := context.WithCancel(ctx)
	err = env.mgr.Submit(ctx, manager.GetTodos{Ctx: wedgeCtx, Username: "alice", Reply: make(chan manager.TodoResult)})
	if err != nil {
		t.Fatalf("submit wedge: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := env.auth.SignUp(ctx, &authv1.SignUpRequest{Username: "bob", Pin: 1111})
		errCh <- err
	}()

	// Take the coordinator down, then release the wedge; the queued sign up is
	// never processed and its handler must not block.
	env.stop()
	unwedge()

	select {
	case err := <-errCh:
		if status.Code(err) != codes.Aborted {
			t.Fatalf("expected Aborted, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("sign up still blocked after coordinator exit")
	}
}
