package page

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/observability/logging"
	authsvc "museum-web/internal/service/auth"
)

// LoginPath is where the admin area sends unauthenticated visitors.
const LoginPath = "/admin/login"

// User-facing messages for DataSource failures.
const (
	MsgNotFound     = "Запись не найдена"
	MsgUnavailable  = "Не удалось загрузить данные. Сервер недоступен, попробуйте позже."
	MsgSaveFailed   = "Не удалось сохранить изменения. Попробуйте ещё раз."
	MsgDeleteFailed = "Не удалось удалить запись. Попробуйте ещё раз."
	MsgInvalidForm  = "Проверьте правильность заполнения формы"
)

type statusCoder interface{ HTTPStatus() int }

// Classify maps an error to the response status and banner text of a page.
// Callers translate their own not-found sentinels to entity.ErrNotFound or
// check them before calling.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized, "Сессия истекла. Войдите снова."
	case errors.Is(err, entity.ErrValidationFailed):
		if msg := entity.UserMessage(err); msg != "" {
			return http.StatusUnprocessableEntity, msg
		}
		return http.StatusUnprocessableEntity, MsgInvalidForm
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		return http.StatusBadGateway, fmt.Sprintf("Ошибка сервера (%d). Попробуйте позже.", sc.HTTPStatus())
	}
	return http.StatusBadGateway, MsgUnavailable
}

// RedirectIfUnauthorized handles an authentication failure on an admin page:
// it drops the session credential and sends the browser to the login page.
// It reports whether it wrote a response.
func RedirectIfUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, entity.ErrUnauthorized) {
		return false
	}
	if store := authsvc.FromContext(r.Context()); store != nil {
		store.Clear()
	}
	http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
	return true
}

// LoginURL returns the login page address that leads back to next.
func LoginURL(next string) string {
	if next == "" || next == LoginPath || !strings.HasPrefix(next, "/admin") {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"next": {next}}.Encode()
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request) {
	r.Render(w, req, http.StatusNotFound, "error", View{
		Title: "Страница не найдена",
		Error: MsgNotFound,
		Data:  http.StatusNotFound,
	})
}

// Fail renders the error page for err, or redirects to the login page when
// the credential was rejected.
func (r *Renderer) Fail(w http.ResponseWriter, req *http.Request, err error) {
	if RedirectIfUnauthorized(w, req, err) {
		return
	}
	status, msg := Classify(err)
	if status == http.StatusNotFound {
		r.NotFound(w, req)
		return
	}
	logging.WithRequestID(req.Context(), r.logger).Error("request failed",
		slog.Int("status", status), slog.Any("error", err))
	r.Render(w, req, status, "error", View{Title: "Ошибка", Error: msg, Data: status})
}

// Logger returns a request-scoped logger.
func (r *Renderer) Logger(req *http.Request) *slog.Logger {
	return logging.WithRequestID(req.Context(), r.logger)
}

// Flash messages selected by the status query parameter after a redirect.
var flashes = map[string]string{
	"created": "Запись успешно создана",
	"updated": "Изменения сохранены",
	"deleted": "Запись удалена",
}

// FlashParam is the query parameter carrying the flash code.
const FlashParam = "status"

// Flash returns the success message requested by the URL, if any.
func Flash(req *http.Request) string {
	return flashes[req.URL.Query().Get(FlashParam)]
}

// WithFlash appends a flash code to target.
func WithFlash(target, code string) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + FlashParam + "=" + url.QueryEscape(code)
}
