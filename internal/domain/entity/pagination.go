package entity

// Pagination describes a single page of a listing query.
// TotalPages is always ceil(TotalProducts / PerPage); CurrentPage is the
// caller-supplied page, clamped below to 1 but never above, so a page past
// the end yields an empty product list rather than an error.
type Pagination struct {
	CurrentPage   int   `json:"current_page"`
	PerPage       int   `json:"per_page"`
	TotalProducts int64 `json:"total_products"`
	TotalPages    int   `json:"total_pages"`
}

// NewPagination computes the pagination metadata for a listing query.
func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}

	return Pagination{
		CurrentPage:   page,
		PerPage:       perPage,
		TotalProducts: total,
		TotalPages:    int((total + int64(perPage) - 1) / int64(perPage)),
	}
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}
