package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/example/todo/todo"
)

var (
	// ErrUnavailable is returned when the backing store cannot be
	// reached or refuses the operation (timeout, throttling, bad
	// credentials). Callers translate it to their own server-error
	// convention; no retry happens at this layer.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrNoSuchDriver is returned by Open when no registered driver
	// matches the requested name.
	ErrNoSuchDriver = errors.New("no such storage driver")
)

// Repository is the persistence contract for todos. Implementations
// must tolerate arbitrary interleaving of calls: a single Save or
// DeleteByID is atomic per key, but nothing across keys or across a
// read-then-write sequence is.
type Repository interface {
	// FindAll returns every stored todo. Order is unspecified.
	FindAll(ctx context.Context) ([]todo.Todo, error)
	// FindByID returns the todo with the given id, or nil if no
	// such todo exists. Absence is not an error.
	FindByID(ctx context.Context, id string) (*todo.Todo, error)
	// Save inserts or replaces the todo keyed by its ID and returns
	// the stored record.
	Save(ctx context.Context, t todo.Todo) (todo.Todo, error)
	// DeleteByID removes the todo with the given id. Deleting an
	// absent id is a no-op; callers that need a not-found signal
	// check existence first.
	DeleteByID(ctx context.Context, id string) error
	// Close releases any resources held by the repository.
	Close() error
}

// Options carries driver-specific settings. Each driver reads only
// the fields it cares about.
type Options struct {
	// TableName is the remote table holding todos (dynamodb driver).
	TableName string
	// Endpoint overrides the service endpoint, for local emulators
	// (dynamodb driver).
	Endpoint string
	// Region is the provider region (dynamodb driver).
	Region string
	// Path is the database file location (bolt driver).
	Path string
}

// Driver constructs a repository from options.
type Driver interface {
	// Name returns the name the driver registers under
	Name() string
	// Open builds a ready-to-use repository
	Open(ctx context.Context, options Options) (Repository, error)
}

var driversMu sync.Mutex
var drivers = map[string]Driver{}

// Register makes a driver available to Open under its name. It is
// called from driver package init functions and panics on a
// duplicate name.
func Register(driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if _, ok := drivers[driver.Name()]; ok {
		panic(fmt.Sprintf("storage driver %q registered twice", driver.Name()))
	}

	drivers[driver.Name()] = driver
}

// Open builds a repository using the driver registered under name.
// The choice is made once at startup; repositories are never swapped
// at runtime.
func Open(ctx context.Context, name string, options Options) (Repository, error) {
	driversMu.Lock()
	driver, ok := drivers[name]
	driversMu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNoSuchDriver, name, Drivers())
	}

	return driver.Open(ctx, options)
}

// Drivers lists the registered driver names in sorted order.
func Drivers() []string {
	driversMu.Lock()
	defer driversMu.Unlock()

	names := make([]string, 0, len(drivers))

	for name := range drivers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
