package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/cafe/view/c1", "/cafe/view/c1"},
		{"/search?st=espresso", "/search?st=espresso"},
		{"https://evil.example.com/", "/"},
		{"//evil.example.com", "/"},
		{"/\\evil.example.com", "/"},
		{"relative/path", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), "input %q", tt.in)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		n, page  int
		start    int
		end      int
		hasPrev  bool
		hasNext  bool
	}{
		{"empty", 0, 1, 0, 0, false, false},
		{"partial first page", 7, 1, 0, 7, false, false},
		{"full first page", 25, 1, 0, 10, false, true},
		{"middle page", 25, 2, 10, 20, true, true},
		{"last page", 25, 3, 20, 25, true, false},
		{"past the end", 25, 9, 25, 25, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, hasPrev, hasNext := paginate(tt.n, tt.page)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.hasPrev, hasPrev)
			assert.Equal(t, tt.hasNext, hasNext)
		})
	}
}

func TestPageParam(t *testing.T) {
	assert.Equal(t, 1, pageParam(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, 1, pageParam(httptest.NewRequest(http.MethodGet, "/?page=0", nil)))
	assert.Equal(t, 1, pageParam(httptest.NewRequest(http.MethodGet, "/?page=abc", nil)))
	assert.Equal(t, 3, pageParam(httptest.NewRequest(http.MethodGet, "/?page=3", nil)))
}

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, httptest.NewRequest(http.MethodPost, "/", nil), "Cafe deleted.")

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)

	// Next request carries the cookie; popping returns the message and
	// clears the cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	assert.Equal(t, "Cafe deleted.", popFlash(rec2, req))

	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

// The flash cookie follows the request scheme the same way the session
// cookie does: Secure on HTTPS, plain on HTTP.
func TestFlash_SecureMirrorsScheme(t *testing.T) {
	httpsReq := httptest.NewRequest(http.MethodPost, "/", nil)
	httpsReq.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	setFlash(rec, httpsReq, "Cafe deleted.")
	require.Len(t, rec.Result().Cookies(), 1)
	assert.True(t, rec.Result().Cookies()[0].Secure)

	plainReq := httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	setFlash(rec, plainReq, "Cafe deleted.")
	require.Len(t, rec.Result().Cookies(), 1)
	assert.False(t, rec.Result().Cookies()[0].Secure)
}

func TestPopFlash_NoCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Empty(t, popFlash(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
}
