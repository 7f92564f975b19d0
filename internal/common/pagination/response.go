package pagination

// Response is the JSON envelope of one page: {"data": [...], "pagination": {...}}.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse wraps a page of items. A nil slice is sent as [] rather than null.
func NewResponse[T any](items []T, meta Metadata) Response[T] {
	if items == nil {
		items = []T{}
	}
	return Response[T]{Data: items, Pagination: meta}
}

// MapResponse converts each item with conv before wrapping it.
func MapResponse[S, T any](items []S, meta Metadata, conv func(S) T) Response[T] {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return NewResponse(out, meta)
}
