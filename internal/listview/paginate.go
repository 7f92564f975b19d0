package listview

import "museum-web/internal/common/pagination"

// Page is one slice of a collection plus the numbers needed to render a pager.
type Page[T any] struct {
	Items []T
	pagination.Metadata
}

// Paginate returns page p of records. p is clamped to [1, totalPages], so a page
// past the end yields the last page. An empty collection yields page 1 of 0.
// A non-positive pageSize puts everything on a single page.
func Paginate[T any](records []T, pageSize, page int) Page[T] {
	total := len(records)
	if pageSize <= 0 {
		pageSize = max(total, 1)
	}

	totalPages := pagination.CalculateTotalPages(total, pageSize)
	page = pagination.ClampPage(page, totalPages)

	start := min(pagination.CalculateOffset(page, pageSize), total)
	end := min(start+pageSize, total)

	return Page[T]{
		Items: records[start:end:end],
		Metadata: pagination.Metadata{
			Total:      total,
			Page:       page,
			Limit:      pageSize,
			TotalPages: totalPages,
		},
	}
}
