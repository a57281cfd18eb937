// Package session provides the per-user key/value scope that server-side
// state such as CSRF tokens lives in.
//
// Two backends exist: MemoryStore in this package for a single process, and
// the Redis store in internal/platform/redis for deployments with more than
// one server process.
package session

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Get when the session holds no such key.
	ErrKeyNotFound = errors.New("session key not found")

	// ErrInvalidID is returned by Open for an empty session ID.
	ErrInvalidID = errors.New("invalid session ID")

	// ErrConflict is returned by Atomic when concurrent writers kept
	// invalidating the section and the retry budget ran out.
	ErrConflict = errors.New("session modified concurrently")
)

// Values is the minimal get/set/delete contract over a session's entries.
type Values interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Session is one user's Values plus an atomic section.
type Session interface {
	Values

	// ID returns the session identifier.
	ID() string

	// Atomic runs fn with exclusive access to the session. Writes made
	// through the Values passed to fn take effect only if fn returns nil.
	// When two Atomic sections race, each observes the other's committed
	// writes, never a partial state.
	Atomic(ctx context.Context, fn func(Values) error) error
}

// Store opens sessions by ID, creating them on first use.
type Store interface {
	Open(ctx context.Context, id string) (Session, error)
	Close() error
}
