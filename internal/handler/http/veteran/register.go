// Package veteran serves the public veteran archive and its admin pages.
package veteran

import (
	"net/http"

	"museum-web/internal/common/pagination"
	"museum-web/internal/handler/http/page"
	vetUC "museum-web/internal/usecase/veteran"
)

// Register registers the public and admin veteran routes. The admin routes
// rely on the route guard in front of the mux.
func Register(mux *http.ServeMux, svc *vetUC.Service, render *page.Renderer, pages pagination.Config) {
	admin := AdminListHandler{Svc: svc, Render: render, PageSize: pages.AdminPageSize}
	form := FormHandler{Svc: svc, Render: render}

	mux.Handle("GET /veterans", ListHandler{Svc: svc, Render: render, PageSize: pages.PublicPageSize})
	mux.Handle("GET /veterans/{id}", DetailHandler{Svc: svc, Render: render})

	mux.Handle("GET /admin/veterans", admin)
	mux.Handle("GET /admin/veterans/add", form)
	mux.Handle("POST /admin/veterans/add", form)
	mux.Handle("GET /admin/veterans/{id}/edit", form)
	mux.Handle("POST /admin/veterans/{id}/edit", form)
	mux.Handle("POST /admin/veterans/{id}/delete", DeleteHandler{Svc: svc, List: admin})
}
