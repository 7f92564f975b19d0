package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"museum-web/internal/domain/entity"
	"museum-web/internal/handler/http/page"
	authsvc "museum-web/internal/service/auth"
)

type loginData struct {
	Email  string
	Next   string
	Errors map[string]string
}

// LoginHandler serves the admin login form.
type LoginHandler struct {
	Svc    *authsvc.AuthService
	Render *page.Renderer
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.Render.Render(w, r, http.StatusOK, "login", page.View{
			Title: "Вход",
			Data:  loginData{Next: safeNext(r.URL.Query().Get("next"))},
		})
		return
	}

	start := time.Now()
	logger := h.Render.Logger(r)

	if err := r.ParseForm(); err != nil {
		h.Render.Render(w, r, http.StatusBadRequest, "login", page.View{Title: "Вход", Error: "Некорректный запрос", Data: loginData{}})
		return
	}
	creds := authsvc.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	data := loginData{Email: creds.Email, Next: safeNext(r.PostForm.Get("next"))}

	_, err := h.Svc.Login(w, r, creds)
	if err == nil {
		RecordLoginDuration("success", time.Since(start).Seconds())
		target := data.Next
		if target == "" {
			target = DashboardPath
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	RecordLoginDuration("failure", time.Since(start).Seconds())
	view := page.View{Title: "Вход"}
	status := http.StatusBadGateway
	var verrs entity.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		status = http.StatusUnprocessableEntity
		data.Errors = verrs.ByField()
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		view.Error = "Неверный email или пароль"
	default:
		logger.Error("login failed", slog.Any("error", err))
		_, view.Error = page.Classify(err)
		if msg := entity.UserMessage(err); msg != "" {
			view.Error = msg
		}
	}
	view.Data = data
	h.Render.Render(w, r, status, "login", view)
}

// LogoutHandler ends the session and returns to the login page.
type LogoutHandler struct {
	Svc *authsvc.AuthService
}

func (h LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Svc.Logout(w, r)
	http.Redirect(w, r, page.LoginPath, http.StatusSeeOther)
}

// safeNext keeps only local admin paths so the login form cannot be used as
// an open redirect.
func safeNext(next string) string {
	if !strings.HasPrefix(next, AdminPrefix+"/") || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return ""
	}
	if isLoginPath(next) {
		return ""
	}
	return next
}

// Register mounts the login and logout endpoints.
func Register(mux *http.ServeMux, svc *authsvc.AuthService, render *page.Renderer) {
	mux.Handle("GET /admin/login", LoginHandler{Svc: svc, Render: render})
	mux.Handle("POST /admin/login", LoginHandler{Svc: svc, Render: render})
	mux.Handle("POST /admin/logout", LogoutHandler{Svc: svc})
	mux.Handle("GET /admin", http.RedirectHandler(DashboardPath, http.StatusSeeOther))
}
