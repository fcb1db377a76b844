package types

import "errors"

// KVStore is the synchronous persistent key-value store everything else is
// built on. Values are strings; callers serialize documents themselves.
type KVStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value. A failed Set
	// leaves the previous value in place.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(key string) error

	// Keys returns every key starting with prefix, in ascending order.
	Keys(prefix string) ([]string, error)

	// Clear removes every key. This is the full storage wipe.
	Clear() error
}

// Store lifecycle and write errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrQuotaExceeded   = errors.New("storage quota exceeded")
	ErrWriteFailed     = errors.New("write failed")
)
