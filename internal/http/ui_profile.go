package httpx

import (
	"net/http"
	"strings"
)

// Profile renders a user's public profile. The "u" query names whose
// profile to show; without it the page falls back to the viewer's own,
// and guests with no target are sent to log in first.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimSpace(r.URL.Query().Get("u"))
	viewer := Username(r.Context())
	if target == "" {
		if viewer == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		target = viewer
	}

	profile, err := h.Users.GetProfile(r.Context(), target)
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	data := h.pageData(w, r, PageMeta{Title: profile.Username + " | Renoh Cafe"})
	data["Profile"] = profile
	data["IsSelf"] = viewer != "" && profile.Username == viewer
	h.render(w, r, http.StatusOK, "profile", data)
}

// AccountDelete removes the viewer's own account upstream, then tears
// down the local session the same way logout does.
func (h *UIHandlers) AccountDelete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	if err := h.Users.DeleteAccount(r.Context(), sess.Token, sess.Username); err != nil {
		h.failAction(w, r, err, "/profile")
		return
	}

	if err := h.Auth.Logout(r.Context(), sess.ID, func() {
		clearSessionCookie(w, r, h.CookieDomain)
	}); err != nil {
		h.logger().WarnContext(r.Context(), "clear session after account deletion failed", "error", err)
		clearSessionCookie(w, r, h.CookieDomain)
	}

	setFlash(w, r, "Your account has been deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
