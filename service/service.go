package service

import (
	"context"
	"fmt"

	"github.com/example/todo/storage"
	"github.com/example/todo/todo"
	"github.com/example/todo/utils/uuid"
)

// Todos is the domain service above raw storage. It owns id
// assignment on create and the existence checks that give update and
// delete their not-found semantics. It adds no caching, events, or
// locking.
type Todos struct {
	repository storage.Repository
}

// New builds the service over a repository
func New(repository storage.Repository) *Todos {
	return &Todos{repository: repository}
}

// List returns every stored todo. Order is unspecified.
func (todos *Todos) List(ctx context.Context) ([]todo.Todo, error) {
	result, err := todos.repository.FindAll(ctx)

	if err != nil {
		return nil, fmt.Errorf("could not list todos: %w", err)
	}

	return result, nil
}

// Get returns the todo with the given id, or nil if absent.
func (todos *Todos) Get(ctx context.Context, id string) (*todo.Todo, error) {
	result, err := todos.repository.FindByID(ctx, id)

	if err != nil {
		return nil, fmt.Errorf("could not get todo %s: %w", id, err)
	}

	return result, nil
}

// Create stores a new todo. A todo without an id gets a generated
// one and starts out not completed. A caller-supplied id is honored
// as-is with no uniqueness check, so a colliding id silently
// overwrites the existing record.
func (todos *Todos) Create(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	if t.ID == "" {
		t.ID = uuid.MustUUID()
		t.Completed = false
	}

	created, err := todos.repository.Save(ctx, t)

	if err != nil {
		return todo.Todo{}, fmt.Errorf("could not create todo: %w", err)
	}

	return created, nil
}

// Update replaces the todo with the given id in full, returning nil
// if no such todo exists. The id in the payload is ignored in favor
// of the path id. The existence check and the save are separate
// storage calls with no lock between them, so two concurrent updates
// racing a delete can both pass the check; that window is accepted.
func (todos *Todos) Update(ctx context.Context, id string, t todo.Todo) (*todo.Todo, error) {
	existing, err := todos.repository.FindByID(ctx, id)

	if err != nil {
		return nil, fmt.Errorf("could not update todo %s: %w", id, err)
	}

	if existing == nil {
		return nil, nil
	}

	t.ID = id

	updated, err := todos.repository.Save(ctx, t)

	if err != nil {
		return nil, fmt.Errorf("could not update todo %s: %w", id, err)
	}

	return &updated, nil
}

// Delete removes the todo with the given id, reporting whether it
// existed. Like Update this is check-then-act, not atomic.
func (todos *Todos) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := todos.repository.FindByID(ctx, id)

	if err != nil {
		return false, fmt.Errorf("could not delete todo %s: %w", id, err)
	}

	if existing == nil {
		return false, nil
	}

	if err := todos.repository.DeleteByID(ctx, id); err != nil {
		return false, fmt.Errorf("could not delete todo %s: %w", id, err)
	}

	return true, nil
}
