package news

import (
	"errors"
	"log/slog"
	"net/http"

	"museum-web/internal/common/pagination"
	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/handler/http/pathutil"
	"museum-web/internal/listview"
	newsUC "museum-web/internal/usecase/news"
)

// ListHandler renders /news.
type ListHandler struct {
	Svc      *newsUC.Service
	Render   *page.Renderer
	PageSize int
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := newsUC.PublicListConfig()
	state := listview.StateFromQuery(r.URL.Query(), cfg.CategoryNames())
	view := page.View{Title: "Новости", Section: "news"}
	status := http.StatusOK

	result, err := h.Svc.Browse(r.Context(), cfg, state, h.PageSize)
	if err != nil {
		h.Render.Logger(r).Error("list news failed", slog.Any("error", err))
		status, view.Error = page.Classify(err)
		result = emptyResult(state)
	} else {
		pagination.RecordRequest("news", result.Page, result.Total)
	}

	view.Data = result
	h.Render.Render(w, r, status, "news_list", view)
}

// DetailHandler renders /news/{id}.
type DetailHandler struct {
	Svc    *newsUC.Service
	Render *page.Renderer
}

func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r)
	if err != nil {
		h.Render.NotFound(w, r)
		return
	}

	n, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, newsUC.ErrNewsNotFound) || errors.Is(err, newsUC.ErrInvalidNewsID) {
			h.Render.NotFound(w, r)
			return
		}
		h.Render.Fail(w, r, err)
		return
	}

	h.Render.Render(w, r, http.StatusOK, "news", page.View{Title: n.Title, Section: "news", Data: n})
}

func emptyResult(state listview.State) listview.Result[*entity.News] {
	return listview.Result[*entity.News]{
		Items:    []*entity.News{},
		Metadata: pagination.Metadata{Page: 1},
		State:    state,
	}
}
