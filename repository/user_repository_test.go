package repository

import (
	"context"
	"strings"
	"testing"

	"todoTaskService/internal/db"
)

func TestUserRepository_CreateAndLookups(t *testing.T) {
	d, err := db.Open("file:userrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u, err := repo.Create(ctx, "alice", 4242)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" || u.Pin != 4242 {
		t.Fatalf("unexpected created user: %+v", u)
	}

	// GetByUsername
	g, err := repo.GetByUsername(ctx, "alice")
	if err != nil || g == nil || g.ID != u.ID {
		t.Fatalf("get by username: %v %+v", err, g)
	}

	// GetByCredentials: exact match only
	g2, err := repo.GetByCredentials(ctx, "alice", 4242)
	if err != nil || g2 == nil || g2.Username != "alice" {
		t.Fatalf("get by credentials: %v %+v", err, g2)
	}
	wrongPin, err := repo.GetByCredentials(ctx, "alice", 1234)
	if err != nil || wrongPin != nil {
		t.Fatalf("wrong pin must not match: %v %+v", err, wrongPin)
	}
	unknown, err := repo.GetByCredentials(ctx, "nobody", 4242)
	if err != nil || unknown != nil {
		t.Fatalf("unknown user must not match: %v %+v", err, unknown)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	d, err := db.Open("file:userrepodup?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "alice", 4242); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = repo.Create(ctx, "alice", 9999)
	if err == nil {
		t.Fatalf("expected duplicate username to fail")
	}
	if !IsConstraintErr(err) {
		t.Fatalf("expected constraint error, got %v", err)
	}
	if !strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
		t.Fatalf("constraint message not surfaced: %v", err)
	}
}
