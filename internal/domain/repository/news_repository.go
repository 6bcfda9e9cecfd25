package repository

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// NewsRepository définit le port de persistance pour les actualités.
type NewsRepository interface {
	Create(ctx context.Context, post *entity.NewsPost) error
	GetByID(ctx context.Context, id string) (*entity.NewsPost, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.NewsPost, error)
	Update(ctx context.Context, post *entity.NewsPost) error
	Delete(ctx context.Context, id string) error
}
