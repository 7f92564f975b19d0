package page

import (
	"log/slog"
	"net/http"

	"museum-web/internal/domain/entity"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
)

// HomeLimit is how many news items and veterans the home page shows.
const HomeLimit = 3

type homeData struct {
	News     []*entity.News
	Veterans []*entity.Veteran
}

// HomeHandler renders the landing page with the latest news and the most
// recently added veterans. Either half may fail on its own.
type HomeHandler struct {
	Veterans *vetUC.Service
	News     *newsUC.Service
	Render   *Renderer
}

func (h HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.Render.NotFound(w, r)
		return
	}
	ctx := r.Context()
	logger := h.Render.Logger(r)
	view := View{Title: "Главная", Section: "home"}

	var data homeData
	news, newsErr := h.News.Latest(ctx, HomeLimit)
	if newsErr != nil {
		logger.Warn("home: news unavailable", slog.Any("error", newsErr))
	}
	data.News = news

	veterans, vetErr := h.Veterans.Latest(ctx, HomeLimit)
	if vetErr != nil {
		logger.Warn("home: veterans unavailable", slog.Any("error", vetErr))
	}
	data.Veterans = veterans

	if newsErr != nil || vetErr != nil {
		view.Error = MsgUnavailable
	}
	view.Data = data
	h.Render.Render(w, r, http.StatusOK, "home", view)
}
