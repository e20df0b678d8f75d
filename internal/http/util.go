package httpx

import (
	"net/http"
	"strconv"
	"strings"
)

// safeRedirectPath restricts redirect targets to same-site paths so a
// crafted redirect_uri cannot bounce the user to another host.
func safeRedirectPath(target string) string {
	if target == "" {
		return "/"
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// perPage is the page size for cafe and post listings.
const perPage = 10

// pageParam parses the 1-based "page" query value, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paginate slices a window of n items for the given 1-based page and
// reports whether pages exist before and after the window.
func paginate(n, page int) (start, end int, hasPrev, hasNext bool) {
	start = (page - 1) * perPage
	if start > n {
		start = n
	}
	end = start + perPage
	if end > n {
		end = n
	}
	return start, end, page > 1, end < n
}
