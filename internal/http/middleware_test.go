package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/renoh/cafe-web/internal/domain/auth"
)

type authServiceFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)

func (f authServiceFunc) Current(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	return f(ctx, sessionID)
}

func (f authServiceFunc) Login(context.Context, string, string) (domainauth.Session, error) {
	return domainauth.Session{}, errors.New("not implemented")
}

func (f authServiceFunc) Logout(context.Context, string, func()) error {
	return errors.New("not implemented")
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(Username(r.Context())))
	})
}

func TestWithSession_ResolvesCookie(t *testing.T) {
	auth := authServiceFunc(func(_ context.Context, sessionID string) (*domainauth.Session, error) {
		require.Equal(t, "s1", sessionID)
		return &domainauth.Session{ID: "s1", Username: "alice", Token: "tok1"}, nil
	})
	handler := WithSession(auth, "", slog.Default())(sessionEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "alice", rec.Body.String())
}

func TestWithSession_NoCookieMeansGuest(t *testing.T) {
	auth := authServiceFunc(func(context.Context, string) (*domainauth.Session, error) {
		t.Fatal("no lookup without a cookie")
		return nil, nil
	})
	handler := WithSession(auth, "", slog.Default())(sessionEcho())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Body.String())
}

func TestWithSession_StoreFailureDegradesToGuest(t *testing.T) {
	auth := authServiceFunc(func(context.Context, string) (*domainauth.Session, error) {
		return nil, errors.New("redis down")
	})
	handler := WithSession(auth, "", slog.Default())(sessionEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Body.String(), "the page still renders, unauthenticated")
}

func TestRecover_Converts500(t *testing.T) {
	handler := Recover(slog.Default())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSessionContext_RoundTrip(t *testing.T) {
	sess := &domainauth.Session{ID: "s1", Username: "alice", Token: "tok1"}
	ctx := SetSessionInContext(context.Background(), sess)

	assert.Equal(t, sess, GetSessionFromContext(ctx))
	assert.Equal(t, "alice", Username(ctx))

	assert.Nil(t, GetSessionFromContext(context.Background()))
	assert.Empty(t, Username(context.Background()))
}
