package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"museum-web/internal/config"
	hhttp "museum-web/internal/handler/http"
	"museum-web/internal/handler/http/api"
	hauth "museum-web/internal/handler/http/auth"
	"museum-web/internal/handler/http/dashboard"
	"museum-web/internal/handler/http/feed"
	"museum-web/internal/handler/http/middleware"
	hnews "museum-web/internal/handler/http/news"
	"museum-web/internal/handler/http/page"
	"museum-web/internal/handler/http/requestid"
	hveteran "museum-web/internal/handler/http/veteran"
	"museum-web/internal/observability/tracing"
	"museum-web/internal/repository"
	authsvc "museum-web/internal/service/auth"
	dashUC "museum-web/internal/usecase/dashboard"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
	"museum-web/pkg/security/csp"
)

// dataSource is everything the site needs from the museum API.
type dataSource interface {
	repository.VeteranRepository
	repository.NewsRepository
	repository.Authenticator
	repository.Pinger
}

type app struct {
	handler  http.Handler
	sessions *authsvc.Sessions
	version  string
}

// newApp builds the services, routes and middleware chain around src.
func newApp(cfg *config.WebConfig, src dataSource, logger *slog.Logger, version string) (*app, error) {
	render, err := page.New(logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	vetSvc := &vetUC.Service{Repo: src}
	newsSvc := &newsUC.Service{Repo: src}
	dashSvc := &dashUC.Service{Veterans: src, News: src}
	sessions := authsvc.NewSessions(cfg.SessionSettings())
	authService := authsvc.NewAuthService(src, sessions)
	pages := cfg.PaginationSettings()

	mux := http.NewServeMux()
	mux.Handle("/", page.HomeHandler{Veterans: vetSvc, News: newsSvc, Render: render})
	mux.Handle("GET /static/", page.Static())

	hveteran.Register(mux, vetSvc, render, pages)
	hnews.Register(mux, newsSvc, render, pages)
	hauth.Register(mux, authService, render)
	dashboard.Register(mux, dashSvc, render)
	mux.Handle("GET /news/rss", feed.Handler{Svc: newsSvc, BaseURL: cfg.Server.PublicURL, Logger: logger})
	api.Register(mux, vetSvc, newsSvc, pages, logger)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		API:           src,
		Sessions:      sessions,
		Version:       version,
		CSPEnabled:    cfg.CSP.Enabled,
		CSPReportOnly: cfg.CSP.ReportOnly,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{API: src})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	throttle := hhttp.NewLoginThrottle(page.LoginPath, cfg.Login.Interval, cfg.Login.Burst, cfg.Server.TrustProxy)

	handler := hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.Recover(logger),
		hhttp.InputValidation(),
		hhttp.Timeout(cfg.Server.RequestTimeout),
		hauth.Sessions(sessions),
		throttle.Limit,
		hauth.Guard,
		cspMiddleware(cfg.CSP),
	)

	return &app{handler: handler, sessions: sessions, version: version}, nil
}

// cspMiddleware is a no-op when CSP is disabled.
func cspMiddleware(cfg config.CSPConfig) hhttp.Middleware {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.NewCSPMiddleware(middleware.CSPMiddlewareConfig{
		Enabled:       true,
		DefaultPolicy: csp.PagePolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/swagger/": csp.SwaggerUIPolicy(),
			"/api/":     csp.StrictPolicy(),
			"/news/rss": csp.StrictPolicy(),
		},
		ReportOnly: cfg.ReportOnly,
	}).Middleware()
}
