package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/renoh/cafe-web/internal/domain/auth"
	"github.com/renoh/cafe-web/internal/ports"
)

// LoginAPI is the slice of the cafe API client the auth service needs.
type LoginAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      LoginAPI
	Sessions ports.SessionStore

	// TTL bounds how long an established session stays valid.
	TTL time.Duration
}

// AuthService owns the current-session state. It is the single writer:
// views read the session from the request context, and only the login and
// logout flows below mutate the store.
type AuthService struct {
	api      LoginAPI
	sessions ports.SessionStore
	ttl      time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		api:      opts.API,
		sessions: opts.Sessions,
		ttl:      ttl,
	}
}

// Login exchanges credentials for an API token and establishes a session.
// Credential and domain failures from the API pass through untranslated so
// the caller can render the matching message.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, err
	}
	return s.Establish(ctx, username, token)
}

// Establish constructs a session from an already-issued token and persists
// it. A session is created whole: both identity fields are required.
func (s *AuthService) Establish(ctx context.Context, username, token string) (domainauth.Session, error) {
	if username == "" || token == "" {
		return domainauth.Session{}, errors.New("username and token are required")
	}

	sess := domainauth.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Logout clears the stored session and then invokes the optional
// completion callback synchronously.
func (s *AuthService) Logout(ctx context.Context, sessionID string, onComplete func()) error {
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	if onComplete != nil {
		onComplete()
	}
	return nil
}

// Current resolves the session for a cookie value. An absent, expired, or
// malformed session yields nil rather than an error; only store failures
// propagate.
func (s *AuthService) Current(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}
