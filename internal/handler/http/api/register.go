package api

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"museum-web/internal/common/pagination"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
)

// Register registers the JSON list endpoints and the Swagger UI.
func Register(mux *http.ServeMux, vets *vetUC.Service, news *newsUC.Service, cfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/veterans", VeteransHandler{Svc: vets, PaginationCfg: cfg, Logger: logger})
	mux.Handle("GET /api/news", NewsHandler{Svc: news, PaginationCfg: cfg, Logger: logger})
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
