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
	"museum-web/internal/observability/metrics"
	vetUC "museum-web/internal/usecase/veteran"
)

const adminListPath = "/admin/veterans"

// AdminListHandler renders the sortable admin table.
type AdminListHandler struct {
	Svc      *vetUC.Service
	Render   *page.Renderer
	PageSize int
}

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

// render shows the table for the request's state. banner, when set, replaces
// the flash with an error message.
func (h AdminListHandler) render(w http.ResponseWriter, r *http.Request, status int, banner string) {
	cfg := vetUC.AdminListConfig()
	state := listview.StateFromQuery(r.URL.Query(), cfg.CategoryNames())
	view := page.View{Title: "Ветераны", Section: "admin", Error: banner}
	if banner == "" {
		view.Flash = page.Flash(r)
	}

	listing, err := h.Svc.Browse(r.Context(), cfg, state, h.PageSize)
	if err != nil {
		if page.RedirectIfUnauthorized(w, r, err) {
			return
		}
		h.Render.Logger(r).Error("admin list veterans failed", slog.Any("error", err))
		status, view.Error = page.Classify(err)
		listing = emptyListing(state)
	} else {
		pagination.RecordRequest("admin_veterans", listing.Page, listing.Total)
		metrics.UpdateRecordsTotal("veteran", listing.SourceCount)
	}

	view.Data = listing
	h.Render.Render(w, r, status, "admin_veterans", view)
}

// FormHandler serves the add and edit forms. A route with an {id} wildcard
// edits that record.
type FormHandler struct {
	Svc    *vetUC.Service
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
	action := r.URL.Path

	if r.Method != http.MethodPost {
		v := &entity.Veteran{}
		if editing {
			var err error
			if v, err = h.Svc.Get(r.Context(), id); err != nil {
				h.fail(w, r, err)
				return
			}
		}
		h.Render.Render(w, r, http.StatusOK, "veteran_form", formView(newFormData(v, action, editing), ""))
		return
	}

	v, err := parseForm(r)
	if err != nil {
		h.Render.Render(w, r, http.StatusBadRequest, "veteran_form",
			formView(newFormData(&entity.Veteran{}, action, editing), "Некорректный запрос"))
		return
	}
	v.ID = id

	form := "veteran_create"
	if editing {
		form = "veteran_update"
		err = h.Svc.Update(r.Context(), v)
	} else {
		_, err = h.Svc.Create(r.Context(), v)
	}

	if err == nil {
		metrics.RecordFormSubmission(form, "success")
		code := "created"
		if editing {
			code = "updated"
		}
		http.Redirect(w, r, page.WithFlash(adminListPath, code), http.StatusSeeOther)
		return
	}

	if page.RedirectIfUnauthorized(w, r, err) {
		metrics.RecordFormSubmission(form, "unauthorized")
		return
	}
	if errors.Is(err, vetUC.ErrVeteranNotFound) {
		metrics.RecordFormSubmission(form, "not_found")
		h.Render.NotFound(w, r)
		return
	}

	data := newFormData(v, action, editing)
	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		metrics.RecordFormSubmission(form, "invalid")
		data.Errors = verrs.ByField()
		h.Render.Render(w, r, http.StatusUnprocessableEntity, "veteran_form", formView(data, ""))
		return
	}

	metrics.RecordFormSubmission(form, "error")
	status, msg := page.Classify(err)
	if status != http.StatusUnprocessableEntity {
		h.Render.Logger(r).Error("save veteran failed", slog.Any("error", err))
		msg = page.MsgSaveFailed
	}
	h.Render.Render(w, r, status, "veteran_form", formView(data, msg))
}

func (h FormHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, vetUC.ErrVeteranNotFound) {
		h.Render.NotFound(w, r)
		return
	}
	h.Render.Fail(w, r, err)
}

func formView(data formData, banner string) page.View {
	title := "Новый ветеран"
	if data.Editing {
		title = "Редактирование ветерана"
	}
	return page.View{Title: title, Section: "admin", Error: banner, Data: data}
}

// DeleteHandler removes a veteran after the API confirmed the deletion.
type DeleteHandler struct {
	Svc  *vetUC.Service
	List AdminListHandler
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r)
	if err != nil {
		h.List.Render.NotFound(w, r)
		return
	}
	err = h.Svc.Delete(r.Context(), id)
	if err == nil || errors.Is(err, vetUC.ErrVeteranNotFound) {
		metrics.RecordDeletion("veteran", err == nil)
		http.Redirect(w, r, page.WithFlash(adminListPath, "deleted"), http.StatusSeeOther)
		return
	}

	metrics.RecordDeletion("veteran", false)
	if page.RedirectIfUnauthorized(w, r, err) {
		return
	}
	h.List.Render.Logger(r).Error("delete veteran failed", slog.String("id", id), slog.Any("error", err))
	h.List.render(w, r, http.StatusBadGateway, page.MsgDeleteFailed)
}
