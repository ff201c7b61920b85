package db

import (
	"context"
	"testing"
)

func TestOpenAppliesMigrations(t *testing.T) {
	d, err := Open("file:dbmig?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if _, err := d.Exec(`INSERT INTO users (username, pin) VALUES ('alice', 4242)`); err != nil {
		t.Fatalf("users table missing after migrations: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO todos (id, user_id, description) VALUES ('t1', 1, 'buy milk')`); err != nil {
		t.Fatalf("todos table missing after migrations: %v", err)
	}
}

func TestAcquireDedicatedConnection(t *testing.T) {
	d, err := Open("file:dbconn?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	conn, err := Acquire(context.Background(), d)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	var n int
	if err := conn.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatalf("query on dedicated connection: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	d, err := Open("file:dbrollback?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO users (username, pin) VALUES ('alice', 4242)`); err == nil {
		t.Fatalf("users table should be gone after rollback")
	}
	// Rolling back with nothing applied is a no-op.
	if err := RollbackLast(d); err != nil {
		t.Fatalf("second rollback: %v", err)
	}
}
