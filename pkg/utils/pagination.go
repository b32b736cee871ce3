package utils

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// GetPaginationParams reads page and limit from the query string, falling
// back to the defaults on anything missing, non-numeric or out of range.
func GetPaginationParams(r *http.Request) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l >= 1 && l <= MaxLimit {
		limit = l
	}

	return page, limit
}

// TotalPages is ceil(total/limit), never negative.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
