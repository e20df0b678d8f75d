package httpx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/renoh/cafe-web/internal/cafeapi"
	domainauth "github.com/renoh/cafe-web/internal/domain/auth"
	"github.com/renoh/cafe-web/internal/domain/model"
	"github.com/renoh/cafe-web/internal/service"
)

// CafeAPI is the slice of the cafe API client the cafe views need.
type CafeAPI interface {
	PopularCafes(ctx context.Context) ([]model.CafeSummary, error)
	SearchCafes(ctx context.Context, term string) ([]model.CafeSummary, error)
	GetCafe(ctx context.Context, id string) (model.Cafe, error)
	CreateCafe(ctx context.Context, token, cafeName string) (string, error)
	DeleteCafe(ctx context.Context, token, id string) error
	JoinCafe(ctx context.Context, token, id string) error
	LeaveCafe(ctx context.Context, token, id string) error
}

// PostAPI is the slice of the cafe API client the post views need.
type PostAPI interface {
	GetPost(ctx context.Context, id string) (model.Post, error)
	CreatePost(ctx context.Context, token, cafeID, title, content string) error
	DeletePost(ctx context.Context, token, id string) error
	CreateComment(ctx context.Context, token, postID, content string) error
	DeleteComment(ctx context.Context, token, id string) error
}

// UserAPI is the slice of the cafe API client the profile and signup
// views need. Login goes through AuthService instead, so that the
// session is established in the same step.
type UserAPI interface {
	GetProfile(ctx context.Context, username string) (model.Profile, error)
	DeleteAccount(ctx context.Context, token, username string) error
	Signup(ctx context.Context, username, password string) error
}

// AuthService owns session state on behalf of the handlers.
type AuthService interface {
	Login(ctx context.Context, username, password string) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string, onComplete func()) error
	Current(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

var (
	_ CafeAPI     = (*cafeapi.Client)(nil)
	_ PostAPI     = (*cafeapi.Client)(nil)
	_ UserAPI     = (*cafeapi.Client)(nil)
	_ AuthService = (*service.AuthService)(nil)
)

// UIHandlers holds dependencies for the HTML views.
type UIHandlers struct {
	Cafes CafeAPI
	Posts PostAPI
	Users UserAPI
	Auth  AuthService

	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// render executes the named page into a buffer first so a template
// failure never leaks a half-written page to the client.
func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, page, data); err != nil {
		h.logger().ErrorContext(r.Context(), "template render failed",
			"page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger().WarnContext(r.Context(), "write response failed", "error", err)
	}
}

// requestGone reports whether the request was cancelled or timed out.
// A gone request gets no response body written at all.
func requestGone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// failAuth implements the uniform policy for classified auth failures:
// the stale session is always cleared, in store and cookie, before the
// user is sent to the login page with the classified message.
func (h *UIHandlers) failAuth(w http.ResponseWriter, r *http.Request, err error) {
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		if logoutErr := h.Auth.Logout(r.Context(), sess.ID, nil); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "clear stale session failed", "error", logoutErr)
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)
	setFlash(w, r, err.Error())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// failPage converts a page fetch failure into the page-level error view.
func (h *UIHandlers) failPage(w http.ResponseWriter, r *http.Request, err error) {
	if requestGone(err) {
		return
	}
	if cafeapi.IsAuthError(err) {
		h.failAuth(w, r, err)
		return
	}

	status := http.StatusBadGateway
	if cafeapi.IsNotFound(err) {
		status = http.StatusNotFound
	}
	data := h.pageData(w, r, PageMeta{Title: "Error | Renoh Cafe"})
	data["Message"] = err.Error()
	h.render(w, r, status, "error", data)
}

// failAction converts a mutating-action failure into a flash message and
// sends the user back to the page they acted from, leaving it editable.
func (h *UIHandlers) failAction(w http.ResponseWriter, r *http.Request, err error, backURL string) {
	if requestGone(err) {
		return
	}
	if cafeapi.IsAuthError(err) {
		h.failAuth(w, r, err)
		return
	}
	setFlash(w, r, err.Error())
	http.Redirect(w, r, safeRedirectPath(backURL), http.StatusSeeOther)
}
