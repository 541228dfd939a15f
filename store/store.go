// Package store is the string-keyed JSON blob store the storefront persists
// into. Values are whole JSON documents written back on every mutation;
// there are no transactions across keys and concurrent writers are
// last-write-wins.
package store

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV reads and writes JSON-serialized values under string keys.
type KV interface {
	// Get unmarshals the value stored under key into v.
	Get(key string, v any) error
	// Put marshals v and stores it under key, replacing any prior value.
	Put(key string, v any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
