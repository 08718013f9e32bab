package server_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/example/todo/server"
	"github.com/example/todo/service"
	"github.com/example/todo/storage"
	"github.com/example/todo/storage/memory"
	"github.com/example/todo/todo"
	"github.com/example/todo/todopb"
	"github.com/example/todo/utils/log"
)

// unavailableRepository fails every call the way the remote backend
// does when the provider is down.
type unavailableRepository struct {
}

func (repository *unavailableRepository) FindAll(ctx context.Context) ([]todo.Todo, error) {
	return nil, storage.ErrUnavailable
}

func (repository *unavailableRepository) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	return nil, storage.ErrUnavailable
}

func (repository *unavailableRepository) Save(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	return todo.Todo{}, storage.ErrUnavailable
}

func (repository *unavailableRepository) DeleteByID(ctx context.Context, id string) error {
	return storage.ErrUnavailable
}

func (repository *unavailableRepository) Close() error {
	return nil
}

func newTodoServer() *server.TodoServer {
	return server.NewTodoServer(service.New(memory.New()), zap.NewNop())
}

func TestGetTodoNotFound(t *testing.T) {
	todoServer := newTodoServer()

	_, err := todoServer.GetTodo(context.Background(), &todopb.GetTodoRequest{Id: "missing"})

	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateThenGetTodo(t *testing.T) {
	todoServer := newTodoServer()
	ctx := context.Background()

	created, err := todoServer.CreateTodo(ctx, &todopb.CreateTodoRequest{
		Title:       "Buy milk",
		Description: "2%",
	})

	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.GetTodo().GetId() == "" {
		t.Fatalf("expected a generated id")
	}

	if created.GetTodo().GetCompleted() {
		t.Fatalf("expected completed=false on create")
	}

	got, err := todoServer.GetTodo(ctx, &todopb.GetTodoRequest{Id: created.GetTodo().GetId()})

	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.GetTodo().GetTitle() != "Buy milk" || got.GetTodo().GetDescription() != "2%" {
		t.Fatalf("get returned a different record: %+v", got.GetTodo())
	}
}

func TestListTodos(t *testing.T) {
	todoServer := newTodoServer()
	ctx := context.Background()

	// an empty store lists as an empty sequence, not a failure
	list, err := todoServer.ListTodos(ctx, &todopb.ListTodosRequest{})

	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(list.GetTodos()) != 0 {
		t.Fatalf("expected no todos, got %d", len(list.GetTodos()))
	}

	todoServer.CreateTodo(ctx, &todopb.CreateTodoRequest{Title: "one"})
	todoServer.CreateTodo(ctx, &todopb.CreateTodoRequest{Title: "two"})

	list, err = todoServer.ListTodos(ctx, &todopb.ListTodosRequest{})

	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(list.GetTodos()) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(list.GetTodos()))
	}
}

func TestUpdateTodo(t *testing.T) {
	todoServer := newTodoServer()
	ctx := context.Background()

	created, _ := todoServer.CreateTodo(ctx, &todopb.CreateTodoRequest{Title: "Buy milk", Description: "2%"})

	updated, err := todoServer.UpdateTodo(ctx, &todopb.UpdateTodoRequest{
		Id:          created.GetTodo().GetId(),
		Title:       "Buy milk",
		Description: "2%",
		Completed:   true,
	})

	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.GetTodo().GetCompleted() {
		t.Fatalf("expected completed=true after update")
	}

	if updated.GetTodo().GetId() != created.GetTodo().GetId() {
		t.Fatalf("update must preserve the id")
	}
}

func TestUpdateTodoNotFound(t *testing.T) {
	todoServer := newTodoServer()

	_, err := todoServer.UpdateTodo(context.Background(), &todopb.UpdateTodoRequest{
		Id:    "missing",
		Title: "t",
	})

	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

// TestDeleteTodo pins the RPC side of the delete asymmetry: a
// missing id is success=false here, not a NOT_FOUND status.
func TestDeleteTodo(t *testing.T) {
	todoServer := newTodoServer()
	ctx := context.Background()

	created, _ := todoServer.CreateTodo(ctx, &todopb.CreateTodoRequest{Title: "t"})

	deleted, err := todoServer.DeleteTodo(ctx, &todopb.DeleteTodoRequest{Id: created.GetTodo().GetId()})

	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if !deleted.GetSuccess() {
		t.Fatalf("expected success=true deleting an existing todo")
	}

	deleted, err = todoServer.DeleteTodo(ctx, &todopb.DeleteTodoRequest{Id: created.GetTodo().GetId()})

	if err != nil {
		t.Fatalf("delete of an absent id must not fail, got %v", err)
	}

	if deleted.GetSuccess() {
		t.Fatalf("expected success=false deleting an absent todo")
	}
}

func TestRPCStorageUnavailable(t *testing.T) {
	todoServer := server.NewTodoServer(service.New(&unavailableRepository{}), zap.NewNop())
	ctx := context.Background()

	_, err := todoServer.ListTodos(ctx, &todopb.ListTodosRequest{})

	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}
}

// TestRPCErrorLogging checks that handler log entries use the logger
// and fields carried on the call context, the way the interceptor
// installs them.
func TestRPCErrorLogging(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	todoServer := server.NewTodoServer(service.New(&unavailableRepository{}), zap.NewNop())

	ctx := log.WithLogger(context.Background(), zap.New(core))
	ctx = log.WithFields(ctx, zap.String("method", "/todo.TodoService/ListTodos"))

	_, err := todoServer.ListTodos(ctx, &todopb.ListTodosRequest{})

	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}

	failures := logs.FilterMessage("storage failure").All()

	if len(failures) != 1 {
		t.Fatalf("expected one storage failure entry, got %d", len(failures))
	}

	if failures[0].ContextMap()["method"] != "/todo.TodoService/ListTodos" {
		t.Fatalf("expected the method on the entry, got %#v", failures[0].ContextMap())
	}
}
