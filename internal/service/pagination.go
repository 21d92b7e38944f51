package service

const (
	// maxLimit caps the page size a client can request.
	maxLimit = 100
	// maxPage keeps (page-1)*limit well inside the int range, so a huge
	// parseable page number degrades to an empty list instead of a
	// negative SQL offset.
	maxPage = 1_000_000_000
)

// Pagination is the metadata attached to every list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// newPagination computes the page count from the total and limit.
func newPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// normalizePage replaces out-of-range page/limit values with sane ones.
// Zero or negative values fall back to page 1 and the given default limit.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
