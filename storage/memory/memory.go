package memory

import (
	"context"
	"sync"

	"github.com/example/todo/storage"
	"github.com/example/todo/todo"
)

func init() {
	storage.Register(&driver{})
}

type driver struct {
}

func (driver *driver) Name() string {
	return "memory"
}

func (driver *driver) Open(ctx context.Context, options storage.Options) (storage.Repository, error) {
	return New(), nil
}

var _ storage.Repository = (*Store)(nil)

// Store is the ephemeral repository: a map guarded by a mutex, with
// process lifetime. Each put or delete is atomic per key and
// last-write-wins; a read-then-write sequence built on top of it
// is not.
type Store struct {
	mu    sync.RWMutex
	todos map[string]todo.Todo
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		todos: map[string]todo.Todo{},
	}
}

func (store *Store) FindAll(ctx context.Context) ([]todo.Todo, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	todos := make([]todo.Todo, 0, len(store.todos))

	for _, t := range store.todos {
		todos = append(todos, t)
	}

	return todos, nil
}

func (store *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	t, ok := store.todos[id]

	if !ok {
		return nil, nil
	}

	return &t, nil
}

func (store *Store) Save(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.todos[t.ID] = t

	return t, nil
}

func (store *Store) DeleteByID(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.todos, id)

	return nil
}

func (store *Store) Close() error {
	return nil
}
