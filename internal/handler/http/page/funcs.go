package page

import (
	"html/template"
	"strings"

	"museum-web/internal/common/pagination"
	"museum-web/internal/listview"
	"museum-web/internal/pkg/isodate"
)

var funcs = template.FuncMap{
	"date":       isodate.Display,
	"inputDate":  isodate.InputValue,
	"excerpt":    Excerpt,
	"paragraphs": Paragraphs,
	"join":       strings.Join,
	"sortMark":   sortMark,
	"add":        func(a, b int) int { return a + b },
	"pager":      newPager,
	"column":     newColumn,
}

// sortMark returns the arrow shown next to the active column header.
func sortMark(state listview.State, key string) string {
	if state.Sort.Key != key {
		return ""
	}
	if state.Sort.Dir == listview.Desc {
		return "▼"
	}
	return "▲"
}

// Pager is the data of the shared pagination block.
type Pager struct {
	pagination.Metadata
	State listview.State
}

func newPager(meta pagination.Metadata, state listview.State) Pager {
	return Pager{Metadata: meta, State: state}
}

// Column is the data of a sortable table header.
type Column struct {
	State listview.State
	Key   string
	Label string
}

func newColumn(state listview.State, key, label string) Column {
	return Column{State: state, Key: key, Label: label}
}
