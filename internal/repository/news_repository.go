package repository

import (
	"context"

	"museum-web/internal/domain/entity"
)

// NewsRepository reads and writes news items.
type NewsRepository interface {
	ListNews(ctx context.Context) ([]*entity.News, error)
	GetNews(ctx context.Context, id string) (*entity.News, error)
	CreateNews(ctx context.Context, n *entity.News) (*entity.News, error)
	UpdateNews(ctx context.Context, n *entity.News) error
	DeleteNews(ctx context.Context, id string) error
}
