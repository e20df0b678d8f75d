package httpx

import (
	"net/http"
	"strings"

	"github.com/renoh/cafe-web/internal/domain/model"
)

// Search renders cafe search results for the "st" query term, paginated
// ten cafes per page. An empty term renders the empty search page
// without calling the API.
func (h *UIHandlers) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("st"))

	data := h.pageData(w, r, PageMeta{Title: "Search | Renoh Cafe", CurrentPage: PageSearch})
	data["Term"] = term

	var cafes []model.CafeSummary
	if term != "" {
		var err error
		cafes, err = h.Cafes.SearchCafes(r.Context(), term)
		if err != nil {
			h.failPage(w, r, err)
			return
		}
	}

	page := pageParam(r)
	start, end, hasPrev, hasNext := paginate(len(cafes), page)
	data["Cafes"] = cafes[start:end]
	data["Total"] = len(cafes)
	data["Page"] = page
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	data["HasPrev"] = hasPrev
	data["HasNext"] = hasNext
	h.render(w, r, http.StatusOK, "search", data)
}
