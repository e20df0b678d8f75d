// Package httpx contains the HTTP surface of the cafe web front-end:
// routing, middleware, and the server-rendered HTML views. All state
// shown on a page comes from the upstream cafe API; the only local
// state is the session resolved by the WithSession middleware.
package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// RouterServices groups everything the router needs to serve the site.
type RouterServices struct {
	Cafes CafeAPI
	Posts PostAPI
	Users UserAPI
	Auth  AuthService

	// Templates is the directory of *.tmpl files and Static the directory
	// of assets to serve under /static/, usually the embedded sets from
	// the repository root.
	Templates fs.FS
	Static    fs.FS

	CookieDomain string
	IsDev        bool
	Logger       *slog.Logger
}

// NewRouter builds the site's HTTP handler: all page routes, wrapped in
// the session-resolving middleware. Mutating routes require a login and
// redirect to the login page otherwise.
func NewRouter(services RouterServices) (http.Handler, error) {
	renderer, err := NewTemplateRenderer(TemplateRendererOptions{
		FS:     services.Templates,
		Reload: services.IsDev,
	})
	if err != nil {
		return nil, err
	}

	h := &UIHandlers{
		Cafes:        services.Cafes,
		Posts:        services.Posts,
		Users:        services.Users,
		Auth:         services.Auth,
		Renderer:     renderer,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	requireAuth := RequireAuth()
	authed := func(handler http.HandlerFunc) http.Handler {
		return requireAuth(handler)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /search", h.Search)

	mux.HandleFunc("GET /cafe/view/{cafeID}", h.CafeView)
	mux.Handle("GET /cafe/create", authed(h.CafeNewForm))
	mux.Handle("POST /cafe/create", authed(h.CafeCreate))
	mux.Handle("GET /cafe/delete/{cafeID}", authed(h.CafeDeleteConfirm))
	mux.Handle("POST /cafe/delete/{cafeID}", authed(h.CafeDelete))
	mux.Handle("POST /cafe/join/{cafeID}", authed(h.CafeJoin))
	mux.Handle("POST /cafe/leave/{cafeID}", authed(h.CafeLeave))

	mux.HandleFunc("GET /post/view/{postID}", h.PostView)
	mux.Handle("GET /post/create/{cafeID}", authed(h.PostNewForm))
	mux.Handle("POST /post/create/{cafeID}", authed(h.PostCreate))
	mux.Handle("POST /post/delete/{postID}", authed(h.PostDelete))
	mux.Handle("POST /post/comment", authed(h.CommentCreate))
	mux.Handle("POST /post/comment/delete/{commentID}", authed(h.CommentDelete))

	mux.HandleFunc("GET /profile", h.Profile)
	mux.Handle("POST /profile/delete", authed(h.AccountDelete))

	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /signup", h.SignupForm)
	mux.HandleFunc("POST /signup", h.Signup)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.HandleFunc("GET /healthz", Health)

	if services.Static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(services.Static)))
	}

	// Everything unmatched lands on the 404 page.
	mux.HandleFunc("/", h.NotFound)

	handler := WithSession(services.Auth, services.CookieDomain, h.logger())(mux)
	handler = CSRFProtection(services.CookieDomain)(handler)
	return handler, nil
}
