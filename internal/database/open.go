package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/todos/internal/models"
)

// Storage drivers accepted by Open
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open creates a freshly seeded collection using the named driver.
// An empty driver selects the memory backend.
func Open(ctx context.Context, driver string) (DataStore, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemoryRepo(models.SeedTodos()), nil
	case DriverSQLite:
		db, err := InitDB(ctx)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepo(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q (must be: %s, %s)", driver, DriverMemory, DriverSQLite)
	}
}
