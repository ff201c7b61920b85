package grpcserver

import (
	"context"
	"net"

	authv1 "todoTaskService/api/auth/v1"
	todov1 "todoTaskService/api/todo/v1"
	"todoTaskService/internal/auth"
	"todoTaskService/internal/config"
	"todoTaskService/internal/logging"
	"todoTaskService/internal/manager"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// StartGRPC starts the gRPC server on the configured address and returns a
// shutdown function. Auth methods are allowlisted past the interceptors; the
// Todo service requires a valid bearer token.
func StartGRPC(cfg *config.Config, mgr *manager.Manager, codec *auth.TokenCodec, log logging.Logger) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Allow plaintext for simplicity; in production, configure TLS.
	_ = insecure.NewCredentials

	unauthenticated := []string{
		authv1.Auth_SignUp_FullMethodName,
		authv1.Auth_SignIn_FullMethodName,
		healthCheckMethod,
	}
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(auth.NewUnaryAuthInterceptor(codec, unauthenticated...)),
		grpc.StreamInterceptor(auth.NewStreamAuthInterceptor(codec, unauthenticated...)),
	)

	authv1.RegisterAuthServer(srv, &AuthServer{Manager: mgr, Log: log})
	todov1.RegisterTodoServer(srv, &TodoServer{Manager: mgr, Log: log})

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
