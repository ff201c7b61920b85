package grpcserver

import (
	"context"
	"fmt"

	authv1 "todoTaskService/api/auth/v1"
	"todoTaskService/internal/logging"
	"todoTaskService/internal/manager"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AuthServer implements auth.v1.Auth. It never touches storage itself: every
// request becomes a coordinator message with a fresh one-shot reply channel.
type AuthServer struct {
	authv1.UnimplementedAuthServer
	Manager *manager.Manager
	Log     logging.Logger
}

// SignUp registers a new credential. The PIN must be a 4-digit value; invalid
// input is rejected before the coordinator ever sees a message.
func (s *AuthServer) SignUp(ctx context.Context, req *authv1.SignUpRequest) (*authv1.SignUpResponse, error) {
	if req.GetPin() < 1000 || req.GetPin() > 9999 {
		msg := fmt.Sprintf("Sign Up for Username: %s - PIN should consist only 4 digits", req.GetUsername())
		s.Log.Error(ctx, msg)
		return nil, status.Error(codes.InvalidArgument, msg)
	}

	replyCh := make(chan manager.SignUpResult, 1)
	if err := s.Manager.Submit(ctx, manager.SignUp{Username: req.GetUsername(), Pin: req.GetPin(), Reply: replyCh}); err != nil {
		s.Log.Error(ctx, "failed to submit sign up message", "err", err)
		return nil, status.Error(codes.Aborted, "Error while signing up")
	}

	res, ok := awaitReply(ctx, s.Manager.Done(), replyCh)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		s.Log.Error(ctx, "coordinator exited before replying to sign up")
		return nil, status.Error(codes.Aborted, "Error while signing up")
	}
	if res.Err != nil {
		return nil, status.Errorf(codes.Aborted, "Error while signing up: %s", res.Err)
	}
	return &authv1.SignUpResponse{Message: "Signed up successfully", Success: true}, nil
}

// SignIn checks a credential and returns a signed session token.
func (s *AuthServer) SignIn(ctx context.Context, req *authv1.SignInRequest) (*authv1.SignInResponse, error) {
	replyCh := make(chan manager.SignInResult, 1)
	if err := s.Manager.Submit(ctx, manager.SignIn{Username: req.GetUsername(), Pin: req.GetPin(), Reply: replyCh}); err != nil {
		s.Log.Error(ctx, "failed to submit sign in message", "err", err)
		return nil, status.Error(codes.Aborted, "Error while signing in")
	}

	res, ok := awaitReply(ctx, s.Manager.Done(), replyCh)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		s.Log.Error(ctx, "coordinator exited before replying to sign in")
		return nil, status.Error(codes.Aborted, "Error while signing in")
	}
	if res.Err != nil {
		return nil, status.Error(codes.Unauthenticated, res.Err.Error())
	}
	s.Log.Info(ctx, "signed in", "username", req.GetUsername())
	return &authv1.SignInResponse{Token: res.Token}, nil
}

// awaitReply waits for a one-shot coordinator reply. ok is false when the
// coordinator exited or the caller's context ended before a reply arrived; a
// reply that raced the shutdown is still preferred.
func awaitReply[T any](ctx context.Context, done <-chan struct{}, ch <-chan T) (T, bool) {
	select {
	case res := <-ch:
		return res, true
	case <-done:
	case <-ctx.Done():
	}
	select {
	case res := <-ch:
		return res, true
	default:
		var zero T
		return zero, false
	}
}
