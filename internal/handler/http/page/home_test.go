package page

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-web/internal/domain/entity"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
)

func serveHome(t *testing.T, vets stubVets, news stubNews, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	h := HomeHandler{
		Veterans: &vetUC.Service{Repo: vets},
		News:     &newsUC.Service{Repo: news},
		Render:   newRenderer(t),
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return rec, doc
}

func TestHome_LatestRecords(t *testing.T) {
	var news []*entity.News
	var vets []*entity.Veteran
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		news = append(news, &entity.News{ID: fmt.Sprintf("n%d", i), Title: fmt.Sprintf("Новость %d", i),
			PublishDate: base.AddDate(0, i, 0).Format(time.RFC3339)})
		vets = append(vets, &entity.Veteran{ID: fmt.Sprintf("v%d", i), LastName: fmt.Sprintf("Фамилия%d", i),
			CreatedAt: base.AddDate(0, 0, i)})
	}

	rec, doc := serveHome(t, stubVets{items: vets}, stubNews{items: news}, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, HomeLimit, doc.Find(".latest-news .news-card").Length())
	assert.Equal(t, "Новость 4", doc.Find(".latest-news h3").First().Text())
	assert.Equal(t, HomeLimit, doc.Find(".latest-veterans .veteran-card").Length())
	assert.Equal(t, "Фамилия4", doc.Find(".latest-veterans h3").First().Text())
	assert.Equal(t, 0, doc.Find(".banner.error").Length())
}

func TestHome_PartialFailure(t *testing.T) {
	news := []*entity.News{{ID: "n1", Title: "Единственная", PublishDate: "2024-02-02"}}
	rec, doc := serveHome(t, stubVets{err: errors.New("timeout")}, stubNews{items: news}, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MsgUnavailable, doc.Find(".banner.error").Text())
	assert.Equal(t, "Единственная", doc.Find(".latest-news h3").Text())
	assert.Equal(t, "Записей пока нет", doc.Find(".latest-veterans .empty").Text())
}

func TestHome_UnknownPathIsNotFound(t *testing.T) {
	rec, _ := serveHome(t, stubVets{}, stubNews{}, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}
