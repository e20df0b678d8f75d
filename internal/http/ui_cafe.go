package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/renoh/cafe-web/internal/cafeapi"
)

func cafeViewPath(id string) string {
	return "/cafe/view/" + url.PathEscape(id)
}

// CafeView renders a cafe's detail page: name, member count, and its
// posts newest-first, ten per page. The action buttons depend on the
// viewer's relation to the cafe.
func (h *UIHandlers) CafeView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cafeID")

	cafe, err := h.Cafes.GetCafe(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	username := Username(r.Context())
	isOwner := cafe.OwnedBy(username)
	isMember := cafe.HasMember(username)

	page := pageParam(r)
	start, end, hasPrev, hasNext := paginate(len(cafe.Posts), page)

	data := h.pageData(w, r, PageMeta{Title: cafe.CafeName + " | Renoh Cafe"})
	data["Cafe"] = cafe
	data["CafeID"] = id
	data["Posts"] = cafe.Posts[start:end]
	data["Page"] = page
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	data["HasPrev"] = hasPrev
	data["HasNext"] = hasNext
	data["IsOwner"] = isOwner
	data["CanWrite"] = isOwner || isMember
	data["CanJoin"] = username != "" && !isOwner && !isMember
	data["CanLeave"] = isMember
	h.render(w, r, http.StatusOK, "cafe_view", data)
}

// CafeNewForm renders the cafe creation form.
func (h *UIHandlers) CafeNewForm(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, PageMeta{Title: "New Cafe | Renoh Cafe"})
	data["CafeName"] = ""
	h.render(w, r, http.StatusOK, "cafe_create", data)
}

// CafeCreate handles the cafe creation form submit. On success the user
// lands on the new cafe's page; on failure the form re-renders with the
// entered name intact.
func (h *UIHandlers) CafeCreate(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	cafeName := strings.TrimSpace(r.PostFormValue("cafeName"))

	if cafeName == "" {
		data := h.pageData(w, r, PageMeta{Title: "New Cafe | Renoh Cafe"})
		data["CafeName"] = ""
		data["Error"] = "Cafe name is required."
		h.render(w, r, http.StatusOK, "cafe_create", data)
		return
	}

	id, err := h.Cafes.CreateCafe(r.Context(), sess.Token, cafeName)
	if err != nil {
		if requestGone(err) {
			return
		}
		if cafeapi.IsAuthError(err) {
			h.failAuth(w, r, err)
			return
		}
		data := h.pageData(w, r, PageMeta{Title: "New Cafe | Renoh Cafe"})
		data["CafeName"] = cafeName
		data["Error"] = err.Error()
		h.render(w, r, http.StatusOK, "cafe_create", data)
		return
	}

	http.Redirect(w, r, cafeViewPath(id), http.StatusSeeOther)
}

// CafeDeleteConfirm renders the deletion confirmation page. Deletion
// itself only happens on the confirmed POST.
func (h *UIHandlers) CafeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("cafeID")

	cafe, err := h.Cafes.GetCafe(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	data := h.pageData(w, r, PageMeta{Title: "Delete Cafe | Renoh Cafe"})
	data["Cafe"] = cafe
	data["CafeID"] = id
	h.render(w, r, http.StatusOK, "cafe_delete", data)
}

// CafeDelete deletes a cafe the viewer owns and returns them home.
func (h *UIHandlers) CafeDelete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("cafeID")

	if err := h.Cafes.DeleteCafe(r.Context(), sess.Token, id); err != nil {
		h.failAction(w, r, err, cafeViewPath(id))
		return
	}

	setFlash(w, r, "Cafe deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CafeJoin adds the viewer to the cafe's member list and reloads the
// cafe page so the new membership is reflected.
func (h *UIHandlers) CafeJoin(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.Cafes.JoinCafe, "Welcome to the cafe!")
}

// CafeLeave removes the viewer from the cafe's member list.
func (h *UIHandlers) CafeLeave(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.Cafes.LeaveCafe, "You left the cafe.")
}

func (h *UIHandlers) membership(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, token, id string) error, flash string) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("cafeID")

	if err := action(r.Context(), sess.Token, id); err != nil {
		h.failAction(w, r, err, cafeViewPath(id))
		return
	}

	setFlash(w, r, flash)
	http.Redirect(w, r, cafeViewPath(id), http.StatusSeeOther)
}
