package veteran

import (
	"errors"
	"log/slog"
	"net/http"

	"museum-web/internal/common/pagination"
	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/handler/http/pathutil"
	"museum-web/internal/listview"
	vetUC "museum-web/internal/usecase/veteran"
)

// ListHandler renders /veterans.
type ListHandler struct {
	Svc      *vetUC.Service
	Render   *page.Renderer
	PageSize int
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := vetUC.PublicListConfig()
	state := listview.StateFromQuery(r.URL.Query(), cfg.CategoryNames())
	view := page.View{Title: "Ветераны", Section: "veterans"}
	status := http.StatusOK

	listing, err := h.Svc.Browse(r.Context(), cfg, state, h.PageSize)
	if err != nil {
		h.Render.Logger(r).Error("list veterans failed", slog.Any("error", err))
		status, view.Error = page.Classify(err)
		listing = emptyListing(state)
	} else {
		pagination.RecordRequest("veterans", listing.Page, listing.Total)
	}

	view.Data = listing
	h.Render.Render(w, r, status, "veterans", view)
}

// DetailHandler renders /veterans/{id}.
type DetailHandler struct {
	Svc    *vetUC.Service
	Render *page.Renderer
}

func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r)
	if err != nil {
		h.Render.NotFound(w, r)
		return
	}

	v, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vetUC.ErrVeteranNotFound) || errors.Is(err, vetUC.ErrInvalidVeteranID) {
			h.Render.NotFound(w, r)
			return
		}
		h.Render.Fail(w, r, err)
		return
	}

	h.Render.Render(w, r, http.StatusOK, "veteran", page.View{
		Title:   v.FullName(),
		Section: "veterans",
		Data:    v,
	})
}

func emptyListing(state listview.State) *vetUC.Listing {
	return &vetUC.Listing{
		Result: listview.Result[*entity.Veteran]{
			Items:    []*entity.Veteran{},
			Metadata: pagination.Metadata{Page: 1},
			State:    state,
		},
	}
}
