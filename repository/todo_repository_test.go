package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"todoTaskService/internal/testutil"
	"todoTaskService/models"
)

func TestTodoRepository_StreamByUsername(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "todorepo")
	users := NewUserRepository(d)
	todos := NewTodoRepository(d)
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", 4242)
	require.NoError(t, err)
	bob, err := users.Create(ctx, "bob", 1111)
	require.NoError(t, err)

	first, err := todos.Create(ctx, alice.ID, "buy milk", models.TodoStatusPending)
	require.NoError(t, err)
	second, err := todos.Create(ctx, alice.ID, "write report", models.TodoStatusInProgress)
	require.NoError(t, err)
	_, err = todos.Create(ctx, bob.ID, "walk dog", "")
	require.NoError(t, err)

	// Only alice's rows, in insertion order.
	list, err := todos.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, "buy milk", list[0].Description)
	require.Equal(t, models.TodoStatusPending, list[0].Status)
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, models.TodoStatusInProgress, list[1].Status)

	// Empty status defaults to pending.
	bobList, err := todos.ListByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	require.Equal(t, models.TodoStatusPending, bobList[0].Status)

	// Unknown user streams nothing.
	empty, err := todos.ListByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestTodoRepository_StreamStopsOnCallbackError(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "todostream")
	users := NewUserRepository(d)
	todos := NewTodoRepository(d)
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice", 4242)
	require.NoError(t, err)
	for _, desc := range []string{"one", "two", "three"} {
		_, err := todos.Create(ctx, alice.ID, desc, "")
		require.NoError(t, err)
	}

	boom := errors.New("stop here")
	var seen int
	err = todos.StreamByUsername(ctx, "alice", func(*models.TodoItem) error {
		seen++
		if seen == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, seen)
}
