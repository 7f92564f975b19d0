package listview

import (
	"net/url"
	"strconv"
	"strings"

	"museum-web/internal/common/pagination"
)

// Query parameter names shared by every listing page.
const (
	ParamQuery = "q"
	ParamFrom  = "from"
	ParamTo    = "to"
	ParamSort  = "sort"
	ParamDir   = "dir"
	ParamPage  = "page"
)

// State is the user's current search, filter, sort and page selection.
// The zero value is the default state of a freshly opened page.
type State struct {
	Query   string
	Filters map[string]string
	From    string
	To      string
	Sort    SortSpec
	Page    int
}

// NewState returns the default state: no predicates, first page.
func NewState() State {
	return State{Filters: map[string]string{}, Page: 1}
}

// SetQuery changes the search text and returns to the first page.
// Surrounding whitespace is dropped.
func (s *State) SetQuery(q string) {
	s.Query = strings.TrimSpace(q)
	s.Page = 1
}

// SetFilter changes one categorical filter and returns to the first page.
// An empty value removes the filter.
func (s *State) SetFilter(name, value string) {
	if s.Filters == nil {
		s.Filters = map[string]string{}
	}
	if value == "" {
		delete(s.Filters, name)
	} else {
		s.Filters[name] = value
	}
	s.Page = 1
}

// SetDateRange changes the date bounds and returns to the first page.
func (s *State) SetDateRange(from, to string) {
	s.From, s.To = from, to
	s.Page = 1
}

// SetSort changes the ordering and returns to the first page.
func (s *State) SetSort(key string, dir Direction) {
	s.Sort = SortSpec{Key: key, Dir: dir}
	s.Page = 1
}

// SetPage moves to page p. Clamping happens when the pipeline runs.
func (s *State) SetPage(p int) {
	s.Page = p
}

// StateFromQuery reads a State from URL query values. filterNames lists the
// categorical parameters the page understands; others are ignored.
func StateFromQuery(values url.Values, filterNames []string) State {
	s := NewState()
	s.Query = strings.TrimSpace(values.Get(ParamQuery))
	for _, name := range filterNames {
		if v := values.Get(name); v != "" {
			s.Filters[name] = v
		}
	}
	s.From = strings.TrimSpace(values.Get(ParamFrom))
	s.To = strings.TrimSpace(values.Get(ParamTo))
	s.Sort = SortSpec{Key: values.Get(ParamSort), Dir: ParseDirection(values.Get(ParamDir))}
	s.Page = pagination.PageFromQuery(values)
	return s
}

// Values encodes the state back into query values. Page 1 is omitted so links
// to the first page stay canonical.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set(ParamQuery, s.Query)
	}
	for _, name := range sortedKeys(s.Filters) {
		if val := s.Filters[name]; val != "" {
			v.Set(name, val)
		}
	}
	if s.From != "" {
		v.Set(ParamFrom, s.From)
	}
	if s.To != "" {
		v.Set(ParamTo, s.To)
	}
	if s.Sort.Key != "" {
		v.Set(ParamSort, s.Sort.Key)
		if s.Sort.Dir == Desc {
			v.Set(ParamDir, string(Desc))
		}
	}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return v
}

// PageURL returns "?<query>" for page p with every other selection preserved.
func (s State) PageURL(p int) string {
	s.Page = p
	enc := s.Values().Encode()
	if enc == "" {
		return "?"
	}
	return "?" + enc
}

// SortURL returns the link of a sortable column header: the same key toggles
// the direction, a new key starts ascending. The page resets to 1.
func (s State) SortURL(key string) string {
	dir := Asc
	if s.Sort.Key == key {
		dir = s.Sort.Dir.Toggle()
	}
	s.SetSort(key, dir)
	return s.PageURL(1)
}

// Active reports whether any predicate narrows the collection.
func (s State) Active() bool {
	if s.Query != "" || s.From != "" || s.To != "" {
		return true
	}
	for _, v := range s.Filters {
		if v != "" {
			return true
		}
	}
	return false
}
