package pagination

// Metadata contains pagination metadata included in API responses and page models.
type Metadata struct {
	Total      int `json:"total"`       // Number of items after filtering
	Page       int `json:"page"`        // Current page number (1-based, clamped)
	Limit      int `json:"limit"`       // Items per page
	TotalPages int `json:"total_pages"` // ceil(Total / Limit)
}

// HasPrev reports whether a previous page exists.
func (m Metadata) HasPrev() bool { return m.Page > 1 }

// HasNext reports whether a next page exists.
func (m Metadata) HasNext() bool { return m.Page < m.TotalPages }

// Pages lists page numbers 1..TotalPages for rendering a pager.
func (m Metadata) Pages() []int {
	pages := make([]int, 0, m.TotalPages)
	for i := 1; i <= m.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}
