package httpx

import (
	"net/http"
	"strings"
)

// LoginForm renders the login page. Logged-in users are sent home.
func (h *UIHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := h.pageData(w, r, PageMeta{Title: "Log In | Renoh Cafe", CurrentPage: PageLogin})
	data["Username"] = ""
	data["RedirectURI"] = r.URL.Query().Get("redirect_uri")
	h.render(w, r, http.StatusOK, "login", data)
}

// Login handles the login form submit. On success the session cookie is
// issued and the user returns to where they were headed; on failure the
// form re-renders with the username intact and the classified message.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	redirectURI := r.PostFormValue("redirect_uri")

	renderForm := func(status int, errMsg string) {
		data := h.pageData(w, r, PageMeta{Title: "Log In | Renoh Cafe", CurrentPage: PageLogin})
		data["Username"] = username
		data["RedirectURI"] = redirectURI
		data["Error"] = errMsg
		h.render(w, r, status, "login", data)
	}

	if username == "" || password == "" {
		renderForm(http.StatusBadRequest, "Both a username and password are required.")
		return
	}

	sess, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		if requestGone(err) {
			return
		}
		renderForm(http.StatusUnauthorized, err.Error())
		return
	}

	setSessionCookie(w, r, h.CookieDomain, sess.ID, sess.ExpiresAt)
	http.Redirect(w, r, safeRedirectPath(redirectURI), http.StatusSeeOther)
}

// SignupForm renders the signup page. Logged-in users are sent home.
func (h *UIHandlers) SignupForm(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := h.pageData(w, r, PageMeta{Title: "Sign Up | Renoh Cafe", CurrentPage: PageSignup})
	data["Username"] = ""
	h.render(w, r, http.StatusOK, "signup", data)
}

// Signup handles the signup form submit. The confirmation check runs
// here, before any upstream call: a mismatch never reaches the API.
func (h *UIHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password_confirm")

	renderForm := func(errMsg string) {
		data := h.pageData(w, r, PageMeta{Title: "Sign Up | Renoh Cafe", CurrentPage: PageSignup})
		data["Username"] = username
		data["Error"] = errMsg
		h.render(w, r, http.StatusBadRequest, "signup", data)
	}

	if username == "" || password == "" {
		renderForm("Both a username and password are required.")
		return
	}
	if password != confirm {
		renderForm("The passwords do not match.")
		return
	}

	if err := h.Users.Signup(r.Context(), username, password); err != nil {
		if requestGone(err) {
			return
		}
		renderForm(err.Error())
		return
	}

	setFlash(w, r, "Account created. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout tears down the session and returns the user home. The cookie
// is cleared only once the store no longer holds the session.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.Auth.Logout(r.Context(), sess.ID, func() {
		clearSessionCookie(w, r, h.CookieDomain)
	}); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", "error", err)
		setFlash(w, r, "Logout failed. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
