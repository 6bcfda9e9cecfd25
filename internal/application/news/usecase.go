package news

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// UseCase cas d'usage CRUD des actualités de la console d'administration.
type UseCase struct {
	repo repository.NewsRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.NewsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crée une actualité.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	post := &entity.NewsPost{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return toNewsResponse(post), nil
}

// GetByID récupère une actualité.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.NewsResponse, error) {
	post, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return toNewsResponse(post), nil
}

// List liste les actualités (publishedOnly pour la vitrine publique).
func (uc *UseCase) List(ctx context.Context, publishedOnly bool, limit, offset int) (*dto.NewsListResponse, error) {
	list, err := uc.repo.List(ctx, publishedOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NewsResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toNewsResponse(p))
	}
	return &dto.NewsListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update met à jour une actualité (partiel).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	post, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		post.Title = *in.Title
	}
	if in.Body != nil {
		post.Body = *in.Body
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	post.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return toNewsResponse(post), nil
}

// Delete supprime une actualité.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toNewsResponse(p *entity.NewsPost) *dto.NewsResponse {
	if p == nil {
		return nil
	}
	return &dto.NewsResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
