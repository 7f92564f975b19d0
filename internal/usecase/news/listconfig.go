package news

import (
	"museum-web/internal/domain/entity"
	"museum-web/internal/listview"
)

// Sort names used in query strings.
const (
	SortTitle       = "title"
	SortPublishDate = "publishDate"
	SortAuthor      = "author"
)

var (
	title       = listview.Field[*entity.News](func(n *entity.News) string { return n.Title })
	content     = listview.Field[*entity.News](func(n *entity.News) string { return n.Content })
	author      = listview.Field[*entity.News](func(n *entity.News) string { return n.Author })
	publishDate = listview.Field[*entity.News](func(n *entity.News) string { return n.PublishDate })
)

// PublicListConfig drives /news: search over title and content, a publish
// date range, newest first.
func PublicListConfig() listview.Config[*entity.News] {
	return listview.Config[*entity.News]{
		SearchFields: []listview.Field[*entity.News]{title, content},
		DateField:    publishDate,
		SortKeys: map[string]listview.SortKey[*entity.News]{
			SortPublishDate: {Field: publishDate, Kind: listview.DateKey},
		},
		DefaultSort: listview.SortSpec{Key: SortPublishDate, Dir: listview.Desc},
	}
}

// AdminListConfig drives /admin/news: title search, a single-day date filter
// (From == To) and sortable columns.
func AdminListConfig() listview.Config[*entity.News] {
	return listview.Config[*entity.News]{
		SearchFields: []listview.Field[*entity.News]{title},
		DateField:    publishDate,
		SortKeys: map[string]listview.SortKey[*entity.News]{
			SortTitle:       {Field: title, Kind: listview.StringKey},
			SortPublishDate: {Field: publishDate, Kind: listview.DateKey},
			SortAuthor:      {Field: author, Kind: listview.StringKey},
		},
		DefaultSort: listview.SortSpec{Key: SortPublishDate, Dir: listview.Desc},
	}
}
