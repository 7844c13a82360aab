// Package kvstore defines the scoped key-value string store the schedule,
// task and preference stores persist through.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports a missing key. Absence is a normal outcome for
// consumers; any other error is an I/O failure worth logging.
var ErrKeyNotFound = errors.New("key not found")

// Store is a scoped key-value string store.
//
// Implementations must be safe for concurrent use. An empty string is a
// legitimate stored value, distinct from an absent key.
type Store interface {
	// Get returns the value stored at key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases resources held by the store.
	Close() error
}
