// Package news serves the public news pages and their admin counterparts.
package news

import (
	"net/http"

	"museum-web/internal/common/pagination"
	"museum-web/internal/handler/http/page"
	newsUC "museum-web/internal/usecase/news"
)

// Register registers the public and admin news routes.
func Register(mux *http.ServeMux, svc *newsUC.Service, render *page.Renderer, pages pagination.Config) {
	admin := AdminListHandler{Svc: svc, Render: render, PageSize: pages.AdminPageSize}
	form := FormHandler{Svc: svc, Render: render}

	mux.Handle("GET /news", ListHandler{Svc: svc, Render: render, PageSize: pages.PublicPageSize})
	mux.Handle("GET /news/{id}", DetailHandler{Svc: svc, Render: render})

	mux.Handle("GET /admin/news", admin)
	mux.Handle("GET /admin/news/add", form)
	mux.Handle("POST /admin/news/add", form)
	mux.Handle("GET /admin/news/{id}/edit", form)
	mux.Handle("POST /admin/news/{id}/edit", form)
	mux.Handle("POST /admin/news/{id}/delete", DeleteHandler{Svc: svc, List: admin})
}
