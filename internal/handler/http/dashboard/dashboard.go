// Package dashboard serves the admin overview page.
package dashboard

import (
	"net/http"

	"museum-web/internal/handler/http/page"
	"museum-web/internal/observability/metrics"
	dashUC "museum-web/internal/usecase/dashboard"
)

// Handler renders /admin/dashboard.
type Handler struct {
	Svc    *dashUC.Service
	Render *page.Renderer
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		h.Render.Fail(w, r, err)
		return
	}
	metrics.UpdateRecordsTotal("veteran", stats.TotalVeterans)
	metrics.UpdateRecordsTotal("news", stats.TotalNews)

	h.Render.Render(w, r, http.StatusOK, "dashboard", page.View{
		Title:   "Панель управления",
		Section: "admin",
		Flash:   page.Flash(r),
		Data:    stats,
	})
}

// Register mounts the dashboard.
func Register(mux *http.ServeMux, svc *dashUC.Service, render *page.Renderer) {
	mux.Handle("GET /admin/dashboard", Handler{Svc: svc, Render: render})
}
