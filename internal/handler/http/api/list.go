package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"museum-web/internal/common/pagination"
	"museum-web/internal/handler/http/respond"
	"museum-web/internal/listview"
	"museum-web/internal/observability/logging"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
)

// errUpstream is what clients see when the museum API fails.
var errUpstream = errors.New("museum API unavailable")

// VeteransHandler serves GET /api/veterans.
type VeteransHandler struct {
	Svc           *vetUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of the filtered veteran list.
// @Summary      Список ветеранов
// @Description  Поиск, фильтры и сортировка работают так же, как на публичной странице /veterans.
// @Tags         veterans
// @Produce      json
// @Param        q      query    string  false  "Поиск по фамилии, имени и отчеству"
// @Param        rank   query    string  false  "Звание (точное совпадение)"
// @Param        unit   query    string  false  "Часть (подстрока, без учёта регистра)"
// @Param        sort   query    string  false  "Ключ сортировки" Enums(lastName)
// @Param        dir    query    string  false  "Направление" Enums(asc, desc)
// @Param        page   query    int     false  "Номер страницы (с 1)" default(1) minimum(1)
// @Param        limit  query    int     false  "Записей на странице" default(10) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[VeteranDTO]
// @Failure      400 {object} map[string]string "Некорректные параметры"
// @Failure      502 {object} map[string]string "API музея недоступен"
// @Router       /api/veterans [get]
func (h VeteransHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.WithRequestID(r.Context(), h.logger())

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.Any("error", err))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := vetUC.PublicListConfig()
	state := listview.StateFromQuery(r.URL.Query(), cfg.CategoryNames())
	state.Page = params.Page

	listing, err := h.Svc.Browse(r.Context(), cfg, state, params.Limit)
	if err != nil {
		logger.Error("list veterans failed", slog.Any("error", err))
		respond.SafeError(w, http.StatusBadGateway, errors.Join(errUpstream, err))
		return
	}

	pagination.RecordRequest("api_veterans", listing.Page, listing.Total)

	logger.Debug("veteran list served",
		slog.Int("page", listing.Page),
		slog.Int("returned_count", len(listing.Items)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	respond.JSON(w, http.StatusOK, pagination.MapResponse(listing.Items, listing.Metadata, veteranDTO))
}

func (h VeteransHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// NewsHandler serves GET /api/news.
type NewsHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of the filtered news list.
// @Summary      Список новостей
// @Description  Поиск по заголовку и тексту, фильтр по дате публикации. По умолчанию новые сверху.
// @Tags         news
// @Produce      json
// @Param        q      query    string  false  "Поиск по заголовку и тексту"
// @Param        from   query    string  false  "Дата публикации с (YYYY-MM-DD)"
// @Param        to     query    string  false  "Дата публикации по (YYYY-MM-DD)"
// @Param        sort   query    string  false  "Ключ сортировки" Enums(publishDate)
// @Param        dir    query    string  false  "Направление" Enums(asc, desc)
// @Param        page   query    int     false  "Номер страницы (с 1)" default(1) minimum(1)
// @Param        limit  query    int     false  "Записей на странице" default(10) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[NewsDTO]
// @Failure      400 {object} map[string]string "Некорректные параметры"
// @Failure      502 {object} map[string]string "API музея недоступен"
// @Router       /api/news [get]
func (h NewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.logger())

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.Any("error", err))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := newsUC.PublicListConfig()
	state := listview.StateFromQuery(r.URL.Query(), cfg.CategoryNames())
	state.Page = params.Page

	result, err := h.Svc.Browse(r.Context(), cfg, state, params.Limit)
	if err != nil {
		logger.Error("list news failed", slog.Any("error", err))
		respond.SafeError(w, http.StatusBadGateway, errors.Join(errUpstream, err))
		return
	}

	pagination.RecordRequest("api_news", result.Page, result.Total)
	respond.JSON(w, http.StatusOK, pagination.MapResponse(result.Items, result.Metadata, newsDTO))
}

func (h NewsHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
