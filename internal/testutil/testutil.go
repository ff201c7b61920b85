package testutil

import (
	"context"
	"database/sql"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"

	"todoTaskService/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// Caller is responsible for closing the DB, typically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache keeps the same DB visible across connections from the pool.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SignToken returns an HS256 session token with the given subject, signed the
// same way the token codec signs it.
func SignToken(t *testing.T, secret, username string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: username}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// CtxWithBearer returns a context containing gRPC metadata Authorization header with the given token.
func CtxWithBearer(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(ctx, md)
}

// CtxWithRawAuthorization is like CtxWithBearer but without the Bearer prefix,
// matching what the original GUI client sends.
func CtxWithRawAuthorization(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", token)
	return metadata.NewIncomingContext(ctx, md)
}
