package kv

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// KeyValueStore represents an interface for a key-value storage system
// providing basic operations like Set, SetNX, Get and Delete
type KeyValueStore interface {
	// Set stores a key-value pair with optional expiration duration
	Set(key, value string, exp time.Duration) error
	// SetNX stores a key-value pair only if the key is absent and
	// reports whether the write happened
	SetNX(key, value string, exp time.Duration) (bool, error)
	// Get retrieves the value associated with the given key
	Get(key string) (string, error)
	// Exists reports whether the key is present
	Exists(key string) (bool, error)
	// Del removes the key-value pair and returns the deleted key
	Del(key string) (string, error)
}
