// Package feed publishes the museum news as an RSS 2.0 feed.
package feed

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/observability/logging"
	"museum-web/internal/pkg/isodate"
	newsUC "museum-web/internal/usecase/news"
)

// DefaultLimit is the number of items in the feed.
const DefaultLimit = 20

// Handler serves /news/rss.
type Handler struct {
	Svc *newsUC.Service
	// BaseURL is the public origin of the site, used for item links.
	BaseURL string
	Limit   int
	Logger  *slog.Logger
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.WithRequestID(r.Context(), logger)

	limit := h.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	items, err := h.Svc.Latest(r.Context(), limit)
	if err != nil {
		logger.Error("rss: list news failed", slog.Any("error", err))
		http.Error(w, page.MsgUnavailable, http.StatusBadGateway)
		return
	}

	rss, err := Build(items, h.BaseURL, time.Now()).ToRss()
	if err != nil {
		logger.Error("rss: encode failed", slog.Any("error", err))
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(rss))
}

// Build converts news items, newest first, into a feed. Item descriptions are
// plain-text excerpts of the content.
func Build(items []*entity.News, baseURL string, now time.Time) *feeds.Feed {
	base := strings.TrimRight(baseURL, "/")
	f := &feeds.Feed{
		Title:       "Музей ветеранов: новости",
		Link:        &feeds.Link{Href: base + "/news"},
		Description: "Новости музея ветеранов Великой Отечественной войны",
		Created:     now,
	}

	for _, n := range items {
		link := base + "/news/" + n.ID
		published, _ := isodate.Parse(n.PublishDate)
		item := &feeds.Item{
			Id:          link,
			Title:       n.Title,
			Link:        &feeds.Link{Href: link},
			Description: page.Excerpt(n.Content, 300),
			Created:     published,
			Updated:     n.UpdatedAt,
		}
		if n.Author != "" {
			item.Author = &feeds.Author{Name: n.Author}
		}
		f.Items = append(f.Items, item)
	}
	if len(items) > 0 {
		if t, err := isodate.Parse(items[0].PublishDate); err == nil {
			f.Updated = t
		}
	}
	return f
}
