package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-web/internal/domain/entity"
	"museum-web/internal/infra/museumapi"
	authsvc "museum-web/internal/service/auth"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"plain short", "Короткий текст", 50, "Короткий текст"},
		{"collapses spaces", "  много \n\t пробелов  ", 50, "много пробелов"},
		{"strips markup", "<p>Первый</p><p>второй <em>абзац</em></p>", 50, "Первый второй абзац"},
		{"drops scripts", "<div>Текст<script>alert('x')</script><style>p{}</style></div>", 50, "Текст"},
		{"cuts on word boundary", "Музей открыт каждый день, кроме понедельника", 20, "Музей открыт каждый…"},
		{"trims punctuation", "Один, два, три", 10, "Один…"},
		{"no limit", "Без ограничения", 0, "Без ограничения"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.in, tt.limit))
		})
	}
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"Первый абзац.", "Второй абзац."}, Paragraphs("Первый абзац.\r\n\r\nВторой абзац.\n\n\n"))
	assert.Nil(t, Paragraphs("   "))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", fmt.Errorf("get: %w", entity.ErrNotFound), http.StatusNotFound, MsgNotFound},
		{"unauthorized", entity.ErrUnauthorized, http.StatusUnauthorized, "Сессия истекла. Войдите снова."},
		{"remote validation", &museumapi.ValidationError{Op: "create news", Message: "Слишком длинный заголовок"},
			http.StatusUnprocessableEntity, "Слишком длинный заголовок"},
		{"form validation", entity.ValidationErrors{{Field: "title", Message: "x"}}, http.StatusUnprocessableEntity, MsgInvalidForm},
		{"http status", &museumapi.HTTPError{Op: "list veterans", StatusCode: 503}, http.StatusBadGateway, "Ошибка сервера (503). Попробуйте позже."},
		{"network", errors.New("dial tcp: i/o timeout"), http.StatusBadGateway, MsgUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestLoginURLAndFlash(t *testing.T) {
	assert.Equal(t, LoginPath, LoginURL(""))
	assert.Equal(t, LoginPath, LoginURL("/veterans"))
	assert.Equal(t, LoginPath, LoginURL(LoginPath))
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Fnews", LoginURL("/admin/news"))

	assert.Equal(t, "/admin/news?status=created", WithFlash("/admin/news", "created"))
	assert.Equal(t, "/admin/news?page=2&status=deleted", WithFlash("/admin/news?page=2", "deleted"))

	req := httptest.NewRequest(http.MethodGet, "/admin/news?status=updated", nil)
	assert.Equal(t, "Изменения сохранены", Flash(req))
	req = httptest.NewRequest(http.MethodGet, "/admin/news?status=<script>", nil)
	assert.Empty(t, Flash(req))
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(nil)
	require.NoError(t, err)
	return r
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{"home", "veterans", "veteran", "news_list", "news", "admin_veterans",
		"admin_news", "veteran_form", "news_form", "login", "dashboard", "error"} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("layout"))
}

func TestRender_LayoutAndNavigation(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	r.Render(rec, req, http.StatusOK, "error", View{Title: "Тест", Section: "news", Flash: "Готово", Data: 500})

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Тест · Музей ветеранов", doc.Find("title").Text())
	assert.Equal(t, "Новости", doc.Find("nav a.active").Text())
	assert.Equal(t, "Готово", doc.Find(".banner.success").Text())
	assert.Equal(t, 0, doc.Find("form[action='/admin/logout']").Length())

	session := authenticatedSession(t)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/news", nil)
	req = req.WithContext(authsvc.WithStore(req.Context(), session))
	r.Render(rec, req, http.StatusOK, "error", View{Title: "Тест", Section: "admin", Data: 500})

	doc, err = goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("form[action='/admin/logout']").Length())
	assert.Equal(t, 1, doc.Find("nav.admin-nav").Length())
}

func authenticatedSession(t *testing.T) *authsvc.Session {
	t.Helper()
	sessions := authsvc.NewSessions(authsvc.DefaultSessionConfig())
	rec := httptest.NewRecorder()
	return sessions.Start(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil), "opaque-token")
}

func TestRender_UnknownPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newRenderer(t).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing", View{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFail(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	r.Fail(rec, httptest.NewRequest(http.MethodGet, "/veterans/1", nil), entity.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Страница не найдена")

	rec = httptest.NewRecorder()
	r.Fail(rec, httptest.NewRequest(http.MethodGet, "/veterans/1", nil), errors.New("boom"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgUnavailable)

	session := authenticatedSession(t)
	req := httptest.NewRequest(http.MethodGet, "/admin/news/1/edit", nil)
	req = req.WithContext(authsvc.WithStore(context.Background(), session))
	rec = httptest.NewRecorder()
	r.Fail(rec, req, fmt.Errorf("get news: %w", entity.ErrUnauthorized))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Fnews%2F1%2Fedit", rec.Header().Get("Location"))
	assert.False(t, session.IsAuthenticated(), "rejected credential is dropped")
}

type stubVets struct {
	items []*entity.Veteran
	err   error
}

func (s stubVets) ListVeterans(context.Context) ([]*entity.Veteran, error) { return s.items, s.err }
func (stubVets) GetVeteran(context.Context, string) (*entity.Veteran, error) {
	return nil, entity.ErrNotFound
}
func (stubVets) CreateVeteran(_ context.Context, v *entity.Veteran) (*entity.Veteran, error) {
	return v, nil
}
func (stubVets) UpdateVeteran(context.Context, *entity.Veteran) error { return nil }
func (stubVets) DeleteVeteran(context.Context, string) error          { return nil }

type stubNews struct {
	items []*entity.News
	err   error
}

func (s stubNews) ListNews(context.Context) ([]*entity.News, error) { return s.items, s.err }
func (stubNews) GetNews(context.Context, string) (*entity.News, error) {
	return nil, entity.ErrNotFound
}
func (stubNews) CreateNews(_ context.Context, n *entity.News) (*entity.News, error) { return n, nil }
func (stubNews) UpdateNews(context.Context, *entity.News) error                   { return nil }
func (stubNews) DeleteNews(context.Context, string) error                         { return nil }
