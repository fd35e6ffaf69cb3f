// Package store defines the durable key-value store used to persist
// engine state (search history and user smart lists). Consumers depend on
// the Store interface; SQLiteStore is the production implementation and
// MemStore backs tests.
//
// The engine treats persistence as fallible-but-tolerable: reads and
// writes return errors, and callers log a warning and substitute an empty
// default rather than propagating a crash.
package store

import (
	"encoding/json"
	"errors"
)

// Keys for the two persisted entries. System smart lists are never
// persisted; only user-defined lists live under KeySmartLists.
const (
	KeyHistory    = "search_history"
	KeySmartLists = "smart_lists"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a minimal durable key-value contract. Writes are synchronous;
// a nil error from Put means the value is durable.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Close releases underlying resources.
	Close() error
}

// MarshalJSON encodes a value with indentation for human-readable output.
// Use this instead of json.Marshal when the output will be displayed.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
