package httpx

import "net/http"

// Home renders the landing page with the most popular cafes.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Cafes.PopularCafes(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	data := h.pageData(w, r, PageMeta{Title: "Renoh Cafe", CurrentPage: PageHome})
	data["Cafes"] = cafes
	h.render(w, r, http.StatusOK, "home", data)
}
