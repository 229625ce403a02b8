// ABOUTME: Key-value store contract shared by both persistence scopes
// ABOUTME: Durable scope survives restarts, session scope lives in temp space

package store

import "errors"

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// Store is a flat key-value store holding JSON-encoded values.
//
// Two scopes back the app: the durable scope (selection state, login flag)
// and the session scope (route history, last walk result). Callers treat
// reads and writes as synchronous and own the interpretation of the bytes;
// a malformed value is the reader's problem, never the store's.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
