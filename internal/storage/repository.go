// ABOUTME: Store interface for the on-device key/value credential storage.
// ABOUTME: Backends hold only string values such as auth tokens and user ids.
package storage

import "errors"

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("key not found")

// Store is the generic local persistence capability.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Keyer is implemented by stores that can enumerate their keys.
type Keyer interface {
	Keys() ([]string, error)
}
