package veteran_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-web/internal/common/pagination"
	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/handler/http/veteran"
	vetUC "museum-web/internal/usecase/veteran"
)

type stubRepo struct {
	mu      sync.Mutex
	items   []*entity.Veteran
	listErr error
	saveErr error
	delErr  error
	created []*entity.Veteran
	updated []*entity.Veteran
	deleted []string
}

func (r *stubRepo) ListVeterans(context.Context) ([]*entity.Veteran, error) {
	return r.items, r.listErr
}

func (r *stubRepo) GetVeteran(_ context.Context, id string) (*entity.Veteran, error) {
	for _, v := range r.items {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *stubRepo) CreateVeteran(_ context.Context, v *entity.Veteran) (*entity.Veteran, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.created = append(r.created, v)
	return v, nil
}

func (r *stubRepo) UpdateVeteran(_ context.Context, v *entity.Veteran) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.updated = append(r.updated, v)
	return nil
}

func (r *stubRepo) DeleteVeteran(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.delErr != nil {
		return r.delErr
	}
	r.deleted = append(r.deleted, id)
	r.items = slices.DeleteFunc(slices.Clone(r.items), func(v *entity.Veteran) bool { return v.ID == id })
	return nil
}

func archive() []*entity.Veteran {
	return []*entity.Veteran{
		{ID: "v1", LastName: "Петров", FirstName: "Иван", Rank: "Сержант", MilitaryUnit: "1-я гвардейская армия",
			BirthDate: "1920-05-01", DeathDate: "1995-03-02", Awards: []string{"Орден Славы"}, Biography: "Родился в Туле.\n\nВоевал под Москвой."},
		{ID: "v2", LastName: "Алексеев", FirstName: "Пётр", Rank: "Лейтенант", MilitaryUnit: "5-я танковая"},
		{ID: "v3", LastName: "Борисов", FirstName: "Олег", Rank: "Сержант", MilitaryUnit: "5-я танковая"},
	}
}

func newMux(t *testing.T, repo *stubRepo) *http.ServeMux {
	t.Helper()
	render, err := page.New(nil)
	require.NoError(t, err)
	mux := http.NewServeMux()
	veteran.Register(mux, &vetUC.Service{Repo: repo}, render, pagination.DefaultConfig())
	return mux
}

func serve(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func cardNames(doc *goquery.Document) []string {
	var names []string
	doc.Find(".veteran-card h2 a").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	return names
}

func TestList_RendersSortedCards(t *testing.T) {
	rec := serve(t, newMux(t, &stubRepo{items: archive()}), http.MethodGet, "/veterans", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, []string{"Алексеев Пётр", "Борисов Олег", "Петров Иван"}, cardNames(doc))
	assert.Equal(t, 3, doc.Find("select[name=rank] option").Length(), "all ranks option plus two ranks")
	assert.Equal(t, 0, doc.Find(".banner.error").Length())
}

func TestList_FiltersByRankAndUnit(t *testing.T) {
	target := "/veterans?" + url.Values{"rank": {"Сержант"}, "unit": {"танков"}}.Encode()
	doc := parse(t, serve(t, newMux(t, &stubRepo{items: archive()}), http.MethodGet, target, nil))

	assert.Equal(t, []string{"Борисов Олег"}, cardNames(doc))
	sel := doc.Find("select[name=rank] option[selected]")
	assert.Equal(t, "Сержант", sel.Text())
	assert.Equal(t, 1, doc.Find("a.reset").Length())
}

func TestList_NoMatches(t *testing.T) {
	doc := parse(t, serve(t, newMux(t, &stubRepo{items: archive()}), http.MethodGet, "/veterans?q=zzz", nil))
	assert.Empty(t, cardNames(doc))
	assert.Contains(t, doc.Find(".empty").Text(), "Ничего не найдено")
}

func TestList_Paginates(t *testing.T) {
	var items []*entity.Veteran
	for i := range 12 {
		items = append(items, &entity.Veteran{
			ID: fmt.Sprintf("v%02d", i), LastName: fmt.Sprintf("Фамилия%02d", i), FirstName: "Имя",
			Rank: "Рядовой", MilitaryUnit: "Часть",
		})
	}
	mux := newMux(t, &stubRepo{items: items})

	doc := parse(t, serve(t, mux, http.MethodGet, "/veterans", nil))
	assert.Len(t, cardNames(doc), 9)
	assert.Equal(t, "1", doc.Find(".pager .current").Text())
	assert.Equal(t, 1, doc.Find(".pager a.next").Length())

	doc = parse(t, serve(t, mux, http.MethodGet, "/veterans?page=2", nil))
	assert.Len(t, cardNames(doc), 3)
	assert.Equal(t, 0, doc.Find(".pager a.next").Length())

	doc = parse(t, serve(t, mux, http.MethodGet, "/veterans?page=99", nil))
	assert.Len(t, cardNames(doc), 3, "page is clamped to the last one")
}

func TestList_SourceUnavailable(t *testing.T) {
	rec := serve(t, newMux(t, &stubRepo{listErr: errors.New("dial tcp: connection refused")}), http.MethodGet, "/veterans", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, page.MsgUnavailable, doc.Find(".banner.error").Text())
	assert.Contains(t, doc.Find(".empty").Text(), "Данные недоступны")
}

func TestDetail(t *testing.T) {
	mux := newMux(t, &stubRepo{items: archive()})

	doc := parse(t, serve(t, mux, http.MethodGet, "/veterans/v1", nil))
	assert.Equal(t, "Петров Иван", doc.Find("h1").Text())
	assert.Equal(t, "01.05.1920 – 02.03.1995", doc.Find(".life-dates").Text())
	assert.Equal(t, "Орден Славы", doc.Find(".awards li").Text())
	assert.Equal(t, 2, doc.Find(".biography p").Length())
	assert.Equal(t, 0, doc.Find(".battles").Length())

	rec := serve(t, mux, http.MethodGet, "/veterans/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Страница не найдена")

	rec = serve(t, mux, http.MethodGet, "/veterans/bad.id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminList_SortAndFlash(t *testing.T) {
	mux := newMux(t, &stubRepo{items: archive()})
	doc := parse(t, serve(t, mux, http.MethodGet, "/admin/veterans?sort=rank&dir=desc&status=deleted", nil))

	var ids []string
	doc.Find("tbody tr[data-id]").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-id", ""))
	})
	require.Len(t, ids, 3)
	assert.Equal(t, "v2", ids[2], "Лейтенант sorts after Сержант when descending")
	assert.Equal(t, "Запись удалена", doc.Find(".banner.success").Text())
	assert.Equal(t, "Показано 3 из 3", doc.Find(".counter").Text())
	assert.Contains(t, doc.Find("th a").First().AttrOr("href", ""), "sort=lastName")
}

func TestCreate(t *testing.T) {
	repo := &stubRepo{}
	form := url.Values{
		"lastName": {" Сидоров "}, "firstName": {"Антон"}, "rank": {"Майор"},
		"militaryUnit": {"3-я армия"}, "birthDate": {"1918-02-03"},
		"awards": {"Орден Ленина, Медаль «За отвагу»"},
	}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/add", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/veterans?status=created", rec.Header().Get("Location"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Сидоров", repo.created[0].LastName)
	assert.Equal(t, []string{"Орден Ленина", "Медаль «За отвагу»"}, repo.created[0].Awards)
}

func TestCreate_ValidationErrors(t *testing.T) {
	repo := &stubRepo{}
	form := url.Values{
		"firstName": {"Антон"}, "rank": {"Майор"}, "militaryUnit": {"3-я армия"},
		"birthDate": {"1950-01-01"}, "deathDate": {"1940-01-01"},
	}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/add", form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, repo.created)

	doc := parse(t, rec)
	assert.Equal(t, 2, doc.Find(".field-error").Length())
	assert.Contains(t, doc.Find(".field-error").Text(), "Фамилия обязательна")
	assert.Equal(t, "Антон", doc.Find("input[name=firstName]").AttrOr("value", ""), "input is kept")
}

func TestEdit(t *testing.T) {
	repo := &stubRepo{items: archive()}
	mux := newMux(t, repo)

	doc := parse(t, serve(t, mux, http.MethodGet, "/admin/veterans/v1/edit", nil))
	assert.Equal(t, "Петров", doc.Find("input[name=lastName]").AttrOr("value", ""))
	assert.Equal(t, "1920-05-01", doc.Find("input[name=birthDate]").AttrOr("value", ""))
	assert.Equal(t, "/admin/veterans/v1/edit", doc.Find("form.record-form").AttrOr("action", ""))

	form := url.Values{"lastName": {"Петров"}, "firstName": {"Иван"}, "rank": {"Старшина"}, "militaryUnit": {"1-я армия"}}
	rec := serve(t, mux, http.MethodPost, "/admin/veterans/v1/edit", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/veterans?status=updated", rec.Header().Get("Location"))
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "v1", repo.updated[0].ID)
	assert.Equal(t, "Старшина", repo.updated[0].Rank)
}

func TestEdit_Unauthorized(t *testing.T) {
	repo := &stubRepo{items: archive(), saveErr: entity.ErrUnauthorized}
	form := url.Values{"lastName": {"Петров"}, "firstName": {"Иван"}, "rank": {"Старшина"}, "militaryUnit": {"1-я армия"}}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/v1/edit", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Fveterans%2Fv1%2Fedit", rec.Header().Get("Location"))
}

func TestSave_UpstreamFailure(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("HTTP 500")}
	form := url.Values{"lastName": {"Сидоров"}, "firstName": {"Антон"}, "rank": {"Майор"}, "militaryUnit": {"3-я армия"}}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/add", form)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, page.MsgSaveFailed, doc.Find(".banner.error").Text())
	assert.Equal(t, "Сидоров", doc.Find("input[name=lastName]").AttrOr("value", ""))
}

func TestDelete(t *testing.T) {
	repo := &stubRepo{items: archive()}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/v2/delete", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/veterans?status=deleted", rec.Header().Get("Location"))
	assert.Equal(t, []string{"v2"}, repo.deleted)
}

func TestDelete_ListNoLongerShowsRecord(t *testing.T) {
	repo := &stubRepo{items: archive()}
	mux := newMux(t, repo)

	rec := serve(t, mux, http.MethodPost, "/admin/veterans/v2/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := parse(t, serve(t, mux, http.MethodGet, rec.Header().Get("Location"), nil))
	assert.Equal(t, 0, doc.Find(`tr[data-id="v2"]`).Length())
	assert.Equal(t, len(archive())-1, doc.Find("tr[data-id]").Length())
}

func TestDelete_NotFoundCountsAsDeleted(t *testing.T) {
	repo := &stubRepo{items: archive(), delErr: entity.ErrNotFound}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/v9/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestDelete_FailureKeepsRecord(t *testing.T) {
	repo := &stubRepo{items: archive(), delErr: errors.New("HTTP 503")}
	rec := serve(t, newMux(t, repo), http.MethodPost, "/admin/veterans/v2/delete", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, page.MsgDeleteFailed, doc.Find(".banner.error").Text())
	assert.Equal(t, 1, doc.Find(`tr[data-id="v2"]`).Length())
}
