// Package pagination implements the uniform page/limit policy applied to
// every listing endpoint: 1-based pages, clamped limits, skip computation
// and the totalPages annotation derived from an independent count query.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized (page, limit) pair.
type Params struct {
	Page  int
	Limit int
}

// Parse reads raw query values and clamps them: page >= 1, limit in
// [1, MaxLimit]. Empty or malformed values fall back to the defaults, so a
// zero limit can never reach the totalPages division.
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Skip returns the number of rows preceding the requested page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit); zero matching rows yield zero pages.
func (p Params) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}

// Meta is the pagination block attached to every paginated response.
type Meta struct {
	Skip        int   `json:"skip"`
	Limit       int   `json:"limit"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
}

// MetaFor builds the response block for a normalized pair and a total count.
func MetaFor(p Params, total int64) Meta {
	return Meta{
		Skip:        p.Skip(),
		Limit:       p.Limit,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages(total),
	}
}
