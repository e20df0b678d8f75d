package httpx

import "net/http"

// Page identifiers used for navbar highlighting.
const (
	PageHome   = "home"
	PageSearch = "search"
	PageLogin  = "login"
	PageSignup = "signup"
)

// PageMeta carries the per-page framing passed to every template.
type PageMeta struct {
	Title       string
	CurrentPage string
}

type pageData map[string]any

// pageData assembles the base template data every page shares: the meta,
// the viewer's auth state, and any pending flash message. Popping the
// flash here means each message renders on exactly one page load.
func (h *UIHandlers) pageData(w http.ResponseWriter, r *http.Request, meta PageMeta) pageData {
	if meta.Title == "" {
		meta.Title = "Renoh Cafe"
	}

	username := Username(r.Context())
	return pageData{
		"Meta":            meta,
		"IsAuthenticated": username != "",
		"Username":        username,
		"Flash":           popFlash(w, r),
		"CSRFToken":       GetCSRFToken(r),
	}
}
