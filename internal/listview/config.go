package listview

// SortSpec names a sort key and its direction.
type SortSpec struct {
	Key string
	Dir Direction
}

// Config wires an entity type into the pipeline.
type Config[T any] struct {
	// SearchFields are matched by the free-text query.
	SearchFields []Field[T]
	// Categories are the categorical filters, keyed by query parameter name.
	Categories map[string]Category[T]
	// DateField is the attribute checked by the date range; nil disables it.
	DateField Field[T]
	// SortKeys are the sortable attributes, keyed by query parameter value.
	SortKeys map[string]SortKey[T]
	// DefaultSort applies when the State names no sort key.
	DefaultSort SortSpec
}

// CategoryNames returns the filter names in a stable order.
func (c Config[T]) CategoryNames() []string {
	return sortedKeys(c.Categories)
}
