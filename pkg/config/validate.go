package config

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule accepts five-field cron expressions ("*/5 * * * *").
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return errors.New("cron schedule is empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration %v is not positive", d)
	}
	return nil
}

// ValidateDurationRange checks lo <= d <= hi.
func ValidateDurationRange(d, lo, hi time.Duration) error {
	return within(d, lo, hi)
}

// ValidateIntRange checks lo <= v <= hi.
func ValidateIntRange(v, lo, hi int) error {
	return within(v, lo, hi)
}

func within[T cmp.Ordered](v, lo, hi T) error {
	switch {
	case lo > hi:
		return fmt.Errorf("empty range [%v, %v]", lo, hi)
	case v < lo || v > hi:
		return fmt.Errorf("%v is outside [%v, %v]", v, lo, hi)
	}
	return nil
}

// ValidateHTTPURL requires an absolute http or https URL with a host.
func ValidateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url %q: %w", raw, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("url %q is not an absolute http(s) URL", raw)
	}
	return nil
}
