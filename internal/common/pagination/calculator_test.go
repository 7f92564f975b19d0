package pagination_test

import (
	"testing"

	"museum-web/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{"first page", 1, 9, 0},
		{"second page", 2, 9, 9},
		{"third admin page", 3, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty", 0, 9, 0},
		{"exactly one page", 9, 9, 1},
		{"partial second page", 12, 9, 2},
		{"admin size", 21, 10, 3},
		{"zero limit", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateTotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"in range", 2, 3, 2},
		{"past the end", 7, 3, 3},
		{"below one", 0, 3, 1},
		{"no pages", 4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.ClampPage(tt.page, tt.totalPages); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestMetadata_Navigation(t *testing.T) {
	t.Parallel()

	m := pagination.Metadata{Total: 12, Page: 2, Limit: 9, TotalPages: 2}
	if !m.HasPrev() {
		t.Error("HasPrev() = false, want true")
	}
	if m.HasNext() {
		t.Error("HasNext() = true, want false")
	}
	if got := m.Pages(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Pages() = %v, want [1 2]", got)
	}
}
