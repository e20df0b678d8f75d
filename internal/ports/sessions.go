// Package ports defines interfaces (hexagonal ports) for behavior that has
// swappable implementations. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/renoh/cafe-web/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions. It is a passive
// durable mirror of the in-flight session state: all three operations
// touch only the backing key-value store, never the network upstream.
type SessionStore interface {
	// Save durably persists a session, overwriting any prior value.
	Save(ctx context.Context, sess domainauth.Session) error

	// Get returns the stored session for id. Missing, expired, or
	// malformed entries yield ErrSessionNotFound, never a decode error.
	Get(ctx context.Context, id string) (domainauth.Session, error)

	// Delete removes any persisted session for id. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, id string) error
}

// ErrSessionNotFound is returned by SessionStore.Get when no usable
// session exists for the given id.
type sessionNotFoundError struct{}

func (sessionNotFoundError) Error() string { return "session not found" }

var ErrSessionNotFound error = sessionNotFoundError{}
