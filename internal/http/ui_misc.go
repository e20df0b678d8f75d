package httpx

import "net/http"

// NotFound renders the 404 page for paths no route matched.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, PageMeta{Title: "Not Found | Renoh Cafe"})
	data["Message"] = "The page you are looking for does not exist."
	h.render(w, r, http.StatusNotFound, "error", data)
}

// Health reports process liveness for load balancers.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
