package httpx

import (
	"context"

	domainauth "github.com/renoh/cafe-web/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the request context,
// or nil when the request is unauthenticated.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session
	}
	return nil
}

// Username returns the logged-in username, or empty for guests.
func Username(ctx context.Context) string {
	if session := GetSessionFromContext(ctx); session != nil {
		return session.Username
	}
	return ""
}
