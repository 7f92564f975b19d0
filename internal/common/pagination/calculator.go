package pagination

// CalculateOffset returns the index of the first item of a 1-based page.
//
// Examples:
//   - Page 1, Limit 9 -> Offset 0
//   - Page 2, Limit 9 -> Offset 9
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit).
//
// An empty collection has zero pages; the page indicator is hidden in that case
// and an empty-state message is rendered instead.
//
// Examples:
//   - Total 0, Limit 9 -> 0 pages
//   - Total 9, Limit 9 -> 1 page
//   - Total 12, Limit 9 -> 2 pages
func CalculateTotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ClampPage forces page into [1, totalPages]. With zero pages the result is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}
