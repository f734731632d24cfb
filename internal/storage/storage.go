// Package storage provides the durable key-value stores that hold the task
// collection and the theme preference.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("storage: key not found")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// KV is a flat string-keyed store. Values are opaque bytes; every Set replaces
// the whole value for its key.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases any underlying resources.
	Close() error
}

// Open opens the backend identified by name at path.
// The path is ignored for the memory backend.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendFile, "":
		return OpenFile(path)
	case BackendBolt:
		return OpenBolt(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
