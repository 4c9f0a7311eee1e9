// Package snapshot persists the complete database state as a single
// base64-encoded blob under a fixed key, and restores it on startup.
package snapshot

import "errors"

var (
	// ErrNoSnapshot is returned by Get when nothing is stored under the key.
	// Callers treat it as "no prior state", not a failure.
	ErrNoSnapshot = errors.New("no snapshot stored")
	// ErrCorrupt marks a stored blob that cannot be decoded back into a
	// database image. Callers should fall back to a fresh database.
	ErrCorrupt = errors.New("corrupt snapshot")
)

// Store is a key-value namespace for persisted database snapshots.
type Store interface {
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}
