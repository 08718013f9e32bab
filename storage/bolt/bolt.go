package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/example/todo/storage"
	"github.com/example/todo/todo"
)

var todosBucket = []byte("todos")

func init() {
	storage.Register(&driver{})
}

type driver struct {
}

func (driver *driver) Name() string {
	return "bolt"
}

func (driver *driver) Open(ctx context.Context, options storage.Options) (storage.Repository, error) {
	if options.Path == "" {
		return nil, fmt.Errorf("bolt driver requires a database path")
	}

	return New(options.Path)
}

var _ storage.Repository = (*Store)(nil)

// Store is a durable local repository backed by a bbolt file: one
// bucket, key = id, value = the JSON-encoded record. It needs no
// network and survives restarts, which makes it the local-run and
// test counterpart to the remote table.
type Store struct {
	db *bolt.DB
}

// New opens (creating if necessary) the database file at path
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)

	if err != nil {
		return nil, fmt.Errorf("could not open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(todosBucket)

		return err
	})

	if err != nil {
		db.Close()

		return nil, fmt.Errorf("could not create todos bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (store *Store) FindAll(ctx context.Context) ([]todo.Todo, error) {
	todos := []todo.Todo{}

	err := store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(todosBucket).ForEach(func(k, v []byte) error {
			var t todo.Todo

			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("could not decode todo %s: %w", k, err)
			}

			todos = append(todos, t)

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (store *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	var found *todo.Todo

	err := store.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(todosBucket).Get([]byte(id))

		if v == nil {
			return nil
		}

		var t todo.Todo

		if err := json.Unmarshal(v, &t); err != nil {
			return fmt.Errorf("could not decode todo %s: %w", id, err)
		}

		found = &t

		return nil
	})

	if err != nil {
		return nil, err
	}

	return found, nil
}

func (store *Store) Save(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	v, err := json.Marshal(t)

	if err != nil {
		return todo.Todo{}, fmt.Errorf("could not encode todo %s: %w", t.ID, err)
	}

	err = store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(todosBucket).Put([]byte(t.ID), v)
	})

	if err != nil {
		return todo.Todo{}, fmt.Errorf("could not save todo %s: %w", t.ID, err)
	}

	return t, nil
}

func (store *Store) DeleteByID(ctx context.Context, id string) error {
	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(todosBucket).Delete([]byte(id))
	})

	if err != nil {
		return fmt.Errorf("could not delete todo %s: %w", id, err)
	}

	return nil
}

func (store *Store) Close() error {
	return store.db.Close()
}
