package httpx

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/renoh/cafe-web/internal/adapters/memstore"
	"github.com/renoh/cafe-web/internal/domain/model"
	"github.com/renoh/cafe-web/internal/service"
)

// fakeCafeAPI implements CafeAPI with overridable function fields so each
// test scripts exactly the calls it expects.
type fakeCafeAPI struct {
	popular func(ctx context.Context) ([]model.CafeSummary, error)
	search  func(ctx context.Context, term string) ([]model.CafeSummary, error)
	get     func(ctx context.Context, id string) (model.Cafe, error)
	create  func(ctx context.Context, token, cafeName string) (string, error)
	remove  func(ctx context.Context, token, id string) error
	join    func(ctx context.Context, token, id string) error
	leave   func(ctx context.Context, token, id string) error
}

func (f *fakeCafeAPI) PopularCafes(ctx context.Context) ([]model.CafeSummary, error) {
	if f.popular == nil {
		return nil, nil
	}
	return f.popular(ctx)
}

func (f *fakeCafeAPI) SearchCafes(ctx context.Context, term string) ([]model.CafeSummary, error) {
	if f.search == nil {
		return nil, nil
	}
	return f.search(ctx, term)
}

func (f *fakeCafeAPI) GetCafe(ctx context.Context, id string) (model.Cafe, error) {
	if f.get == nil {
		return model.Cafe{}, nil
	}
	return f.get(ctx, id)
}

func (f *fakeCafeAPI) CreateCafe(ctx context.Context, token, cafeName string) (string, error) {
	if f.create == nil {
		return "", nil
	}
	return f.create(ctx, token, cafeName)
}

func (f *fakeCafeAPI) DeleteCafe(ctx context.Context, token, id string) error {
	if f.remove == nil {
		return nil
	}
	return f.remove(ctx, token, id)
}

func (f *fakeCafeAPI) JoinCafe(ctx context.Context, token, id string) error {
	if f.join == nil {
		return nil
	}
	return f.join(ctx, token, id)
}

func (f *fakeCafeAPI) LeaveCafe(ctx context.Context, token, id string) error {
	if f.leave == nil {
		return nil
	}
	return f.leave(ctx, token, id)
}

type fakePostAPI struct {
	get           func(ctx context.Context, id string) (model.Post, error)
	create        func(ctx context.Context, token, cafeID, title, content string) error
	remove        func(ctx context.Context, token, id string) error
	comment       func(ctx context.Context, token, postID, content string) error
	removeComment func(ctx context.Context, token, id string) error
}

func (f *fakePostAPI) GetPost(ctx context.Context, id string) (model.Post, error) {
	if f.get == nil {
		return model.Post{}, nil
	}
	return f.get(ctx, id)
}

func (f *fakePostAPI) CreatePost(ctx context.Context, token, cafeID, title, content string) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, token, cafeID, title, content)
}

func (f *fakePostAPI) DeletePost(ctx context.Context, token, id string) error {
	if f.remove == nil {
		return nil
	}
	return f.remove(ctx, token, id)
}

func (f *fakePostAPI) CreateComment(ctx context.Context, token, postID, content string) error {
	if f.comment == nil {
		return nil
	}
	return f.comment(ctx, token, postID, content)
}

func (f *fakePostAPI) DeleteComment(ctx context.Context, token, id string) error {
	if f.removeComment == nil {
		return nil
	}
	return f.removeComment(ctx, token, id)
}

type fakeUserAPI struct {
	profile func(ctx context.Context, username string) (model.Profile, error)
	remove  func(ctx context.Context, token, username string) error
	signup  func(ctx context.Context, username, password string) error
	login   func(ctx context.Context, username, password string) (string, error)
}

func (f *fakeUserAPI) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	if f.profile == nil {
		return model.Profile{Username: username}, nil
	}
	return f.profile(ctx, username)
}

func (f *fakeUserAPI) DeleteAccount(ctx context.Context, token, username string) error {
	if f.remove == nil {
		return nil
	}
	return f.remove(ctx, token, username)
}

func (f *fakeUserAPI) Signup(ctx context.Context, username, password string) error {
	if f.signup == nil {
		return nil
	}
	return f.signup(ctx, username, password)
}

func (f *fakeUserAPI) Login(ctx context.Context, username, password string) (string, error) {
	if f.login == nil {
		return "test-token", nil
	}
	return f.login(ctx, username, password)
}

// testSite bundles a fully wired router with the fakes and the real
// session plumbing behind it.
type testSite struct {
	Router   http.Handler
	Cafes    *fakeCafeAPI
	Posts    *fakePostAPI
	Users    *fakeUserAPI
	Auth     *service.AuthService
	Sessions *memstore.SessionStore
}

// mustSiteFS returns the real template directory from the repository.
func mustSiteFS(t *testing.T) fs.FS {
	t.Helper()
	fsys := os.DirFS("../../web/templates")
	if _, err := fs.Stat(fsys, "layout.tmpl"); err != nil {
		t.Fatalf("site templates not found: %v", err)
	}
	return fsys
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()

	cafes := &fakeCafeAPI{}
	posts := &fakePostAPI{}
	users := &fakeUserAPI{}
	sessions := memstore.NewSessionStore()
	auth := service.NewAuthService(service.AuthServiceOptions{
		API:      users,
		Sessions: sessions,
		TTL:      time.Hour,
	})

	router, err := NewRouter(RouterServices{
		Cafes:     cafes,
		Posts:     posts,
		Users:     users,
		Auth:      auth,
		Templates: mustSiteFS(t),
	})
	require.NoError(t, err)

	return &testSite{
		Router:   router,
		Cafes:    cafes,
		Posts:    posts,
		Users:    users,
		Auth:     auth,
		Sessions: sessions,
	}
}

// loginAs establishes a session directly in the store and returns the
// cookie a logged-in browser would send.
func (s *testSite) loginAs(t *testing.T, username string) *http.Cookie {
	t.Helper()
	sess, err := s.Auth.Establish(context.Background(), username, "token-"+username)
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: sess.ID}
}

func (s *testSite) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// testCSRFToken is the matched cookie/field pair post injects, standing
// in for the token a browser would have received on a prior GET.
const testCSRFToken = "test-csrf-token"

func (s *testSite) post(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set("csrf_token", testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: testCSRFToken})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// parseHTML parses a response body, failing the test on malformed markup.
func parseHTML(t *testing.T, body io.Reader) *html.Node {
	t.Helper()
	doc, err := html.Parse(body)
	require.NoError(t, err)
	return doc
}

// pageText flattens every text node in the document, space-joined, so
// assertions can check visible content regardless of markup structure.
func pageText(doc *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

// findNodes returns all element nodes with the given tag.
func findNodes(doc *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// sessionCookieFrom extracts the session cookie from a response, or nil.
func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}
