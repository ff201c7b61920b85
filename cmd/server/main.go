package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoTaskService/internal/auth"
	"todoTaskService/internal/config"
	"todoTaskService/internal/db"
	grpcserver "todoTaskService/internal/grpc"
	"todoTaskService/internal/logging"
	"todoTaskService/internal/manager"
	"todoTaskService/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	logger.Info(context.Background(), "configuration loaded", "config", cfg.String())

	// Open DB and check out the coordinator's dedicated connection.
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error(context.Background(), "close db", "err", err)
		}
	}()

	conn, err := db.Acquire(context.Background(), d)
	if err != nil {
		log.Fatalf("acquire db connection: %v", err)
	}
	defer func() { _ = conn.Close() }()

	codec, err := auth.NewTokenCodec(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	// Wire the repositories onto the dedicated connection and start the
	// coordinator worker.
	users := repository.NewUserRepository(conn)
	todos := repository.NewTodoRepository(conn)
	mgr := manager.New(users, todos, codec, logger)
	mgrCtx, stopMgr := context.WithCancel(context.Background())
	defer stopMgr()
	go mgr.Run(mgrCtx)

	// Start gRPC
	shutdown, err := grpcserver.StartGRPC(cfg, mgr, codec, logger)
	if err != nil {
		log.Fatalf("start grpc: %v", err)
	}
	logger.Info(context.Background(), "gRPC server listening", "addr", cfg.GRPC.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error(ctx, "shutdown error", "err", err)
	}
}
