package store

import "errors"

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("key not found")

// Store is a key-value persistence adapter. Values are JSON-serializable
// records; serialization happens inside the adapter. A missing key is
// reported as ErrNotFound, never as an empty value.
type Store interface {
	// Get reads the value stored under key into v
	Get(key string, v any) error

	// Set replaces the entire value stored under key
	Set(key string, v any) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(key string) error

	// Keys lists all persisted keys
	Keys() ([]string, error)

	// Close releases any resources held by the store
	Close() error
}
