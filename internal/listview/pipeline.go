package listview

import "museum-web/internal/common/pagination"

// Result is the render-ready output of one pipeline run.
type Result[T any] struct {
	Items []T
	pagination.Metadata
	// State is the input state with the sort resolved and the page clamped.
	State State
	// SourceCount is the size of the collection before any predicate.
	SourceCount int
}

// Compute runs search, categorical filters, date range, sort and pagination
// over records, in that order.
func Compute[T any](records []T, cfg Config[T], state State, pageSize int) Result[T] {
	out := ApplyTextSearch(records, state.Query, cfg.SearchFields...)

	for _, name := range cfg.CategoryNames() {
		out = cfg.Categories[name].apply(out, state.Filters[name])
	}

	if cfg.DateField != nil {
		out = ApplyDateRangeFilter(out, cfg.DateField, state.From, state.To)
	}

	spec := state.Sort
	if spec.Key == "" {
		spec = cfg.DefaultSort
	}
	if key, ok := cfg.SortKeys[spec.Key]; ok {
		out = SortBy(out, key, spec.Dir)
	}

	page := Paginate(out, pageSize, state.Page)
	state.Sort = spec
	state.Page = page.Page

	return Result[T]{
		Items:       page.Items,
		Metadata:    page.Metadata,
		State:       state,
		SourceCount: len(records),
	}
}
