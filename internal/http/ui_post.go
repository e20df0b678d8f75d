package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/renoh/cafe-web/internal/cafeapi"
)

func postViewPath(id string) string {
	return "/post/view/" + url.PathEscape(id)
}

// PostView renders a post with its comments and, for logged-in viewers,
// the comment form. Delete buttons appear only on the viewer's own
// post and comments.
func (h *UIHandlers) PostView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("postID")

	post, err := h.Posts.GetPost(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	username := Username(r.Context())

	data := h.pageData(w, r, PageMeta{Title: post.Title + " | Renoh Cafe"})
	data["Post"] = post
	data["PostID"] = id
	data["CanDelete"] = post.WrittenBy(username)
	data["Viewer"] = username
	h.render(w, r, http.StatusOK, "post_view", data)
}

// PostNewForm renders the post creation form for a cafe. The cafe name
// arrives via the "cn" query so the form can show where the post will
// land without refetching the cafe.
func (h *UIHandlers) PostNewForm(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, PageMeta{Title: "New Post | Renoh Cafe"})
	data["CafeID"] = r.PathValue("cafeID")
	data["CafeName"] = r.URL.Query().Get("cn")
	data["Title"] = ""
	data["Content"] = ""
	h.render(w, r, http.StatusOK, "post_create", data)
}

// PostCreate handles the post creation form submit. On failure the form
// re-renders with the draft intact so nothing typed is lost.
func (h *UIHandlers) PostCreate(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	cafeID := r.PathValue("cafeID")
	title := strings.TrimSpace(r.PostFormValue("title"))
	content := strings.TrimSpace(r.PostFormValue("content"))

	renderForm := func(errMsg string) {
		data := h.pageData(w, r, PageMeta{Title: "New Post | Renoh Cafe"})
		data["CafeID"] = cafeID
		data["CafeName"] = r.PostFormValue("cafeName")
		data["Title"] = title
		data["Content"] = content
		data["Error"] = errMsg
		h.render(w, r, http.StatusOK, "post_create", data)
	}

	if title == "" || content == "" {
		renderForm("Both a title and content are required.")
		return
	}

	if err := h.Posts.CreatePost(r.Context(), sess.Token, cafeID, title, content); err != nil {
		if requestGone(err) {
			return
		}
		if cafeapi.IsAuthError(err) {
			h.failAuth(w, r, err)
			return
		}
		renderForm(err.Error())
		return
	}

	http.Redirect(w, r, cafeViewPath(cafeID), http.StatusSeeOther)
}

// PostDelete deletes a post the viewer wrote. The post page is gone
// afterwards, so the user lands back on the cafe page when the form
// told us where to return, or home otherwise.
func (h *UIHandlers) PostDelete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	id := r.PathValue("postID")

	if err := h.Posts.DeletePost(r.Context(), sess.Token, id); err != nil {
		h.failAction(w, r, err, postViewPath(id))
		return
	}

	setFlash(w, r, "Post deleted.")
	http.Redirect(w, r, safeRedirectPath(r.PostFormValue("return_to")), http.StatusSeeOther)
}

// CommentCreate adds a comment to a post and reloads the post page.
func (h *UIHandlers) CommentCreate(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	postID := r.PostFormValue("postID")
	content := strings.TrimSpace(r.PostFormValue("content"))

	if postID == "" {
		h.NotFound(w, r)
		return
	}
	if content == "" {
		setFlash(w, r, "Comment text is required.")
		http.Redirect(w, r, postViewPath(postID), http.StatusSeeOther)
		return
	}

	if err := h.Posts.CreateComment(r.Context(), sess.Token, postID, content); err != nil {
		h.failAction(w, r, err, postViewPath(postID))
		return
	}

	http.Redirect(w, r, postViewPath(postID), http.StatusSeeOther)
}

// CommentDelete deletes a comment the viewer wrote and reloads the post.
func (h *UIHandlers) CommentDelete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	commentID := r.PathValue("commentID")
	postID := r.PostFormValue("postID")

	back := postViewPath(postID)
	if postID == "" {
		back = "/"
	}

	if err := h.Posts.DeleteComment(r.Context(), sess.Token, commentID); err != nil {
		h.failAction(w, r, err, back)
		return
	}

	setFlash(w, r, "Comment deleted.")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
