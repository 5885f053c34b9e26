package database

import "io"

// DataStore is a TodoRepository that owns resources which must be released
// when the process stops.
type DataStore interface {
	TodoRepository
	io.Closer
}

// Compile-time verification that both backends implement DataStore
var (
	_ DataStore = (*MemoryRepo)(nil)
	_ DataStore = (*SQLiteRepo)(nil)
)
