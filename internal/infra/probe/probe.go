// Package probe checks the museum API on a cron schedule. Each run pings the
// API, refreshes the record count gauges and sweeps idle admin sessions.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"museum-web/internal/handler/http/respond"
	"museum-web/internal/observability/metrics"
	"museum-web/internal/repository"
)

// DefaultTimeout bounds one probe run.
const DefaultTimeout = 20 * time.Second

// Sweeper drops expired sessions and returns how many remain.
type Sweeper interface {
	Sweep() int
}

// Probe is one availability check. Veterans, News and Sessions are optional.
type Probe struct {
	API      repository.Pinger
	Veterans repository.VeteranRepository
	News     repository.NewsRepository
	Sessions Sweeper
	Timeout  time.Duration
	Metrics  *Metrics
	Logger   *slog.Logger
}

// Result summarises one run.
type Result struct {
	Up       bool
	Veterans int
	News     int
	Sessions int
	Duration time.Duration
}

// Run performs one check. The returned error is the first failure; the
// session sweep happens regardless.
func (p *Probe) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	logger := p.logger()
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var res Result
	if p.Sessions != nil {
		res.Sessions = p.Sessions.Sweep()
	}

	err := p.API.Ping(ctx)
	res.Up = err == nil
	metrics.SetMuseumAPIUp(res.Up)
	if err == nil {
		err = p.count(ctx, &res)
	}
	res.Duration = time.Since(start)

	if p.Metrics != nil {
		p.Metrics.DurationSeconds.Observe(res.Duration.Seconds())
		if err != nil {
			p.Metrics.RunsTotal.WithLabelValues("failure").Inc()
		} else {
			p.Metrics.RunsTotal.WithLabelValues("success").Inc()
			p.Metrics.LastSuccessTimestamp.SetToCurrentTime()
		}
	}

	if err != nil {
		logger.Warn("museum API probe failed",
			slog.Bool("up", res.Up),
			slog.String("error", respond.SanitizeError(err)),
			slog.Duration("duration", res.Duration))
		return res, err
	}
	logger.Debug("museum API probe succeeded",
		slog.Int("veterans", res.Veterans),
		slog.Int("news", res.News),
		slog.Int("sessions", res.Sessions),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func (p *Probe) count(ctx context.Context, res *Result) error {
	var errs []error
	if p.Veterans != nil {
		vets, err := p.Veterans.ListVeterans(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("list veterans: %w", err))
		} else {
			res.Veterans = len(vets)
			metrics.UpdateRecordsTotal("veteran", res.Veterans)
		}
	}
	if p.News != nil {
		news, err := p.News.ListNews(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("list news: %w", err))
		} else {
			res.News = len(news)
			metrics.UpdateRecordsTotal("news", res.News)
		}
	}
	return errors.Join(errs...)
}

func (p *Probe) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Scheduler runs a Probe on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
}

// Start schedules p with a five-field cron expression and starts the
// scheduler. Overlapping runs are skipped.
func Start(p *Probe, schedule string, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(schedule, func() {
		_, _ = p.Run(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("schedule probe %q: %w", schedule, err)
	}
	c.Start()
	p.logger().Info("museum API probe scheduled", slog.String("schedule", schedule))
	return &Scheduler{cron: c}, nil
}

// Stop stops the scheduler and waits for a running probe until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
