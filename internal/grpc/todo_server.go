package grpcserver

import (
	todov1 "todoTaskService/api/todo/v1"
	"todoTaskService/internal/auth"
	"todoTaskService/internal/logging"
	"todoTaskService/internal/manager"
	"todoTaskService/models"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// todoStreamBuffer bounds the coordinator-facing row channel so the worker
// can run a few rows ahead of the outbound stream.
const todoStreamBuffer = 4

// TodoServer implements todo.v1.Todo.
type TodoServer struct {
	todov1.UnimplementedTodoServer
	Manager *manager.Manager
	Log     logging.Logger
}

// GetTodos streams the authenticated user's todo items. The identity comes
// from the principal the auth interceptor attached; rows arrive on a bounded
// channel from the coordinator and are forwarded onto the wire one by one.
func (s *TodoServer) GetTodos(_ *todov1.GetTodoRequest, stream todov1.Todo_GetTodosServer) error {
	ctx := stream.Context()
	p, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return err
	}

	rows := make(chan manager.TodoResult, todoStreamBuffer)
	if err := s.Manager.Submit(ctx, manager.GetTodos{Ctx: ctx, Username: p.Username, Reply: rows}); err != nil {
		s.Log.Error(ctx, "failed to submit get todos message", "err", err)
		return status.Error(codes.Aborted, "Error while getting todos")
	}

	done := s.Manager.Done()
	for {
		var res manager.TodoResult
		var open bool
		select {
		case res, open = <-rows:
		case <-done:
			// The coordinator is gone; drain what it managed to send before
			// giving up on the rest.
			select {
			case res, open = <-rows:
			default:
				s.Log.Error(ctx, "coordinator exited mid-stream", "username", p.Username)
				return status.Error(codes.Aborted, "Error while getting todos")
			}
		}
		if !open {
			return nil
		}
		if res.Err != nil {
			return status.Errorf(codes.Aborted, "Error while getting todos: %s", res.Err)
		}
		if err := stream.Send(toProtoTodoItem(res.Item)); err != nil {
			// Client went away; the coordinator unblocks via the request context.
			return err
		}
	}
}

func toProtoTodoItem(t *models.TodoItem) *todov1.TodoItem {
	if t == nil {
		return nil
	}
	return &todov1.TodoItem{Id: t.ID, Description: t.Description, Status: string(t.Status)}
}
