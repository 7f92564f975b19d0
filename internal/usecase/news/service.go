package news

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/listview"
	"museum-web/internal/repository"
)

// Service provides news management use cases.
type Service struct {
	Repo repository.NewsRepository
}

// List retrieves all news items.
func (s *Service) List(ctx context.Context) ([]*entity.News, error) {
	items, err := s.Repo.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// Browse fetches the feed once and runs it through the list pipeline.
func (s *Service) Browse(ctx context.Context, cfg listview.Config[*entity.News], state listview.State, pageSize int) (listview.Result[*entity.News], error) {
	items, err := s.List(ctx)
	if err != nil {
		return listview.Result[*entity.News]{}, err
	}
	return listview.Compute(items, cfg, state, pageSize), nil
}

// Latest returns up to n items ordered by publish date, newest first.
func (s *Service) Latest(ctx context.Context, n int) ([]*entity.News, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Latest(items, n), nil
}

// Latest orders items by publish date, newest first, and keeps n.
func Latest(items []*entity.News, n int) []*entity.News {
	sorted := listview.SortBy(items, listview.SortKey[*entity.News]{Field: publishDate, Kind: listview.DateKey}, listview.Desc)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Get retrieves a single news item by ID.
func (s *Service) Get(ctx context.Context, id string) (*entity.News, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidNewsID
	}
	n, err := s.Repo.GetNews(ctx, id)
	if errors.Is(err, entity.ErrNotFound) || (err == nil && n == nil) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	return n, nil
}

// Create validates n and stores it.
func (s *Service) Create(ctx context.Context, n *entity.News) (*entity.News, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateNews(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return created, nil
}

// Update validates n and replaces the stored item with the same ID.
func (s *Service) Update(ctx context.Context, n *entity.News) error {
	if strings.TrimSpace(n.ID) == "" {
		return ErrInvalidNewsID
	}
	if err := n.Validate(); err != nil {
		return err
	}
	if err := s.Repo.UpdateNews(ctx, n); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("update news: %w", err)
	}
	return nil
}

// Delete removes the item from the repository.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNewsID
	}
	if err := s.Repo.DeleteNews(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
