package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-web/internal/config"
	"museum-web/internal/infra/museumapi"
	"museum-web/internal/infra/probe"
	"museum-web/internal/observability/logging"
	"museum-web/internal/observability/tracing"
	authsvc "museum-web/internal/service/auth"
	envcfg "museum-web/pkg/config"

	_ "museum-web/docs" // swagger docs
)

// @title           Museum Web JSON API
// @version         1.0
// @description     Read-only JSON view of the veterans archive and the museum news,
// @description     filtered and paginated the same way as the public pages.

// @contact.name   Museum web team
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	configPath := flag.String("config", envcfg.GetEnvString("CONFIG_PATH", ""), "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)
	recordConfigLoad(logger, cfg)

	shutdownTracing := tracing.Setup(cfg.Tracing.SampleRatio)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	client, err := museumapi.New(cfg.ClientConfig(),
		museumapi.WithAuthHeader(authsvc.HeaderFromContext),
		museumapi.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create museum API client", slog.Any("error", err))
		os.Exit(1)
	}

	app, err := newApp(cfg, client, logger, getVersion())
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	p := &probe.Probe{
		API:      client,
		Veterans: client,
		News:     client,
		Sessions: app.sessions,
		Metrics:  probe.NewMetrics(nil),
		Logger:   logger,
	}

	runServer(logger, cfg, app, p)
}

func recordConfigLoad(logger *slog.Logger, cfg *config.WebConfig) {
	m := envcfg.NewConfigMetrics("museum_web")
	for _, f := range cfg.Fallbacks {
		logger.Warn("configuration fallback applied", slog.String("field", f.Field), slog.String("warning", f.Warning))
		m.RecordFallback(f.Field)
	}
	m.RecordLoad(len(cfg.Fallbacks) > 0)
	logger.Info("configuration loaded",
		slog.String("api_base_url", cfg.API.BaseURL),
		slog.String("addr", cfg.Server.Addr),
		slog.Bool("csp_enabled", cfg.CSP.Enabled),
		slog.Bool("probe_enabled", cfg.Probe.Enabled))
}

func getVersion() string {
	return envcfg.GetEnvString("VERSION", "dev")
}

// runServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(logger *slog.Logger, cfg *config.WebConfig, app *app, p *probe.Probe) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sched *probe.Scheduler
	if cfg.Probe.Enabled {
		if _, err := p.Run(ctx); err != nil {
			logger.Warn("museum API is not reachable at startup")
		}
		var err error
		if sched, err = probe.Start(p, cfg.Probe.Schedule, time.Local); err != nil {
			logger.Error("failed to start probe", slog.Any("error", err))
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           app.handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", app.version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Warn("probe did not stop in time", slog.Any("error", err))
		}
	}
	cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
