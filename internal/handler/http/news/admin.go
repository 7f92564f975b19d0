package news

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"museum-web/internal/common/pagination"
	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/handler/http/pathutil"
	"museum-web/internal/listview"
	"museum-web/internal/observability/metrics"
	newsUC "museum-web/internal/usecase/news"
)

const (
	adminListPath = "/admin/news"
	// dayParam selects a single publish day on the admin table.
	dayParam = "day"
)

// AdminListHandler renders the admin news table.
type AdminListHandler struct {
	Svc      *newsUC.Service
	Render   *page.Renderer
	PageSize int
}

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

// adminState reads the table state; a day parameter becomes a one-day range.
func adminState(r *http.Request, cfg listview.Config[*entity.News]) listview.State {
	q := r.URL.Query()
	state := listview.StateFromQuery(q, cfg.CategoryNames())
	if day := strings.TrimSpace(q.Get(dayParam)); day != "" {
		state.SetDateRange(day, day)
		state.SetPage(pagination.PageFromQuery(q))
	}
	return state
}

func (h AdminListHandler) render(w http.ResponseWriter, r *http.Request, status int, banner string) {
	cfg := newsUC.AdminListConfig()
	state := adminState(r, cfg)
	view := page.View{Title: "Новости", Section: "admin", Error: banner}
	if banner == "" {
		view.Flash = page.Flash(r)
	}

	result, err := h.Svc.Browse(r.Context(), cfg, state, h.PageSize)
	if err != nil {
		if page.RedirectIfUnauthorized(w, r, err) {
			return
		}
		h.Render.Logger(r).Error("admin list news failed", slog.Any("error", err))
		status, view.Error = page.Classify(err)
		result = emptyResult(state)
	} else {
		pagination.RecordRequest("admin_news", result.Page, result.Total)
		metrics.UpdateRecordsTotal("news", result.SourceCount)
	}

	view.Data = result
	h.Render.Render(w, r, status, "admin_news", view)
}

type formData struct {
	News    *entity.News
	Errors  map[string]string
	Action  string
	Editing bool
}

func parseForm(r *http.Request) (*entity.News, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	f := r.PostForm
	return &entity.News{
		Title:    strings.TrimSpace(f.Get("title")),
		Content:  f.Get("content"),
		ImageURL: strings.TrimSpace(f.Get("imageUrl")),
	}, nil
}

func formView(data formData, banner string) page.View {
	title := "Новая новость"
	if data.Editing {
		title = "Редактирование новости"
	}
	return page.View{Title: title, Section: "admin", Error: banner, Data: data}
}

// FormHandler serves the add and edit forms.
type FormHandler struct {
	Svc    *newsUC.Service
	Render *page.Renderer
}

func (h FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	editing := r.PathValue("id") != ""
	var id string
	if editing {
		var err error
		if id, err = pathutil.ExtractID(r); err != nil {
			h.Render.NotFound(w, r)
			return
		}
	}
	data := formData{Action: r.URL.Path, Editing: editing, News: &entity.News{}}

	if r.Method != http.MethodPost {
		if editing {
			n, err := h.Svc.Get(r.Context(), id)
			if errors.Is(err, newsUC.ErrNewsNotFound) {
				h.Render.NotFound(w, r)
				return
			}
			if err != nil {
				h.Render.Fail(w, r, err)
				return
			}
			data.News = n
		}
		h.Render.Render(w, r, http.StatusOK, "news_form", formView(data, ""))
		return
	}

	n, err := parseForm(r)
	if err != nil {
		h.Render.Render(w, r, http.StatusBadRequest, "news_form", formView(data, "Некорректный запрос"))
		return
	}
	n.ID = id
	data.News = n

	form := "news_create"
	if editing {
		form = "news_update"
		err = h.Svc.Update(r.Context(), n)
	} else {
		_, err = h.Svc.Create(r.Context(), n)
	}

	switch {
	case err == nil:
		metrics.RecordFormSubmission(form, "success")
		code := "created"
		if editing {
			code = "updated"
		}
		http.Redirect(w, r, page.WithFlash(adminListPath, code), http.StatusSeeOther)
		return
	case page.RedirectIfUnauthorized(w, r, err):
		metrics.RecordFormSubmission(form, "unauthorized")
		return
	case errors.Is(err, newsUC.ErrNewsNotFound):
		metrics.RecordFormSubmission(form, "not_found")
		h.Render.NotFound(w, r)
		return
	}

	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		metrics.RecordFormSubmission(form, "invalid")
		data.Errors = verrs.ByField()
		h.Render.Render(w, r, http.StatusUnprocessableEntity, "news_form", formView(data, ""))
		return
	}

	metrics.RecordFormSubmission(form, "error")
	status, msg := page.Classify(err)
	if status != http.StatusUnprocessableEntity {
		h.Render.Logger(r).Error("save news failed", slog.Any("error", err))
		msg = page.MsgSaveFailed
	}
	h.Render.Render(w, r, status, "news_form", formView(data, msg))
}

// DeleteHandler removes a news item after the API confirmed the deletion.
type DeleteHandler struct {
	Svc  *newsUC.Service
	List AdminListHandler
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r)
	if err != nil {
		h.List.Render.NotFound(w, r)
		return
	}

	err = h.Svc.Delete(r.Context(), id)
	if err == nil || errors.Is(err, newsUC.ErrNewsNotFound) {
		metrics.RecordDeletion("news", err == nil)
		http.Redirect(w, r, page.WithFlash(adminListPath, "deleted"), http.StatusSeeOther)
		return
	}

	metrics.RecordDeletion("news", false)
	if page.RedirectIfUnauthorized(w, r, err) {
		return
	}
	h.List.Render.Logger(r).Error("delete news failed", slog.String("id", id), slog.Any("error", err))
	h.List.render(w, r, http.StatusBadGateway, page.MsgDeleteFailed)
}
