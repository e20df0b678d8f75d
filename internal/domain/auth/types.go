// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Session is the server-side record we persist for a logged-in user.
// ID is an opaque session identifier carried by the browser cookie.
// Token is the raw credential issued by the cafe API on login and is
// attached verbatim to authenticated upstream requests.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session is fully populated. A session is
// either fully present or entirely absent; partial sessions are never
// handed to views.
func (s Session) Valid() bool {
	return s.ID != "" && s.Username != "" && s.Token != ""
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
