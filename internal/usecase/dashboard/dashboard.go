// Package dashboard assembles the admin overview: collection totals, items
// added recently and a short activity feed.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"museum-web/internal/domain/entity"
	"museum-web/internal/pkg/isodate"
	"museum-web/internal/repository"
)

const (
	// RecentWindow is how far back "added recently" reaches.
	RecentWindow = 30 * 24 * time.Hour
	// ActivityLimit caps the recent activity list.
	ActivityLimit = 5
)

// Kind names the record type of an activity entry.
type Kind string

const (
	KindVeteran Kind = "veteran"
	KindNews    Kind = "news"
)

// Action tells whether an activity entry is a creation or a later edit.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Activity is one line of the recent activity list.
type Activity struct {
	Kind   Kind
	ID     string
	Title  string
	Action Action
	At     time.Time
}

// Stats is the content of the dashboard page.
type Stats struct {
	TotalVeterans  int
	TotalNews      int
	RecentVeterans int
	RecentNews     int
	Activity       []Activity
}

// Service computes dashboard statistics.
type Service struct {
	Veterans repository.VeteranRepository
	News     repository.NewsRepository
	// Now defaults to time.Now.
	Now func() time.Time
}

// Stats fetches both collections concurrently. A failure of either cancels the
// other and is returned.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		veterans []*entity.Veteran
		news     []*entity.News
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		veterans, err = s.Veterans.ListVeterans(gctx)
		if err != nil {
			return fmt.Errorf("list veterans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		news, err = s.News.ListNews(gctx)
		if err != nil {
			return fmt.Errorf("list news: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compute(veterans, news, s.now()), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Compute derives the statistics from already loaded collections.
func Compute(veterans []*entity.Veteran, news []*entity.News, now time.Time) *Stats {
	since := now.Add(-RecentWindow)
	st := &Stats{
		TotalVeterans: len(veterans),
		TotalNews:     len(news),
	}

	var activity []Activity
	for _, v := range veterans {
		if !v.CreatedAt.IsZero() && v.CreatedAt.After(since) {
			st.RecentVeterans++
		}
		activity = appendActivity(activity, KindVeteran, v.ID, v.FullName(), v.CreatedAt, v.UpdatedAt)
	}
	for _, n := range news {
		created, _ := isodate.Parse(n.PublishDate)
		if !created.IsZero() && created.After(since) {
			st.RecentNews++
		}
		activity = appendActivity(activity, KindNews, n.ID, n.Title, created, n.UpdatedAt)
	}

	slices.SortStableFunc(activity, func(a, b Activity) int { return b.At.Compare(a.At) })
	if len(activity) > ActivityLimit {
		activity = activity[:ActivityLimit]
	}
	st.Activity = activity
	return st
}

// appendActivity records the latest thing that happened to a record. Records
// without any timestamp are skipped.
func appendActivity(dst []Activity, kind Kind, id, title string, created, updated time.Time) []Activity {
	a := Activity{Kind: kind, ID: id, Title: title, Action: ActionCreated, At: created}
	if updated.After(created) {
		a.Action, a.At = ActionUpdated, updated
	}
	if a.At.IsZero() {
		return dst
	}
	return append(dst, a)
}
