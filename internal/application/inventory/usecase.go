package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
	"github.com/jdelort/cafe-manager-api/internal/domain/stock"
)

// UseCase cas d'usage CRUD pour les articles du stock.
// Le statut est recalculé à chaque lecture via stock.Classify, jamais persisté.
type UseCase struct {
	repo repository.ItemRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.ItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crée un nouvel article.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || !entity.ValidCategory(in.Category) || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.Price.IsNegative() || in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Price:       in.Price,
		MinQuantity: in.MinQuantity,
		DateAdded:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID récupère un article par ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update met à jour un article (partiel).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		item.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.MinQuantity != nil {
		if in.MinQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.MinQuantity = *in.MinQuantity
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ChangeQuantity met à jour uniquement la quantité (édition en ligne du tableau).
// Renvoie l'article avec son statut recalculé, sans rechargement complet.
func (uc *UseCase) ChangeQuantity(ctx context.Context, id string, quantity decimal.Decimal) (*dto.ItemResponse, error) {
	if quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	return toItemResponse(item), nil
}

// List liste les articles avec pagination.
func (uc *UseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un article par ID.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// BulkDelete supprime une sélection d'articles. Les échecs n'interrompent pas le lot;
// le résultat agrège "N supprimé(s), M erreur(s)" avec les IDs en échec.
func (uc *UseCase) BulkDelete(ctx context.Context, ids []string) (*dto.BulkDeleteResponse, error) {
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.BulkDeleteResponse{}
	for _, id := range ids {
		if err := uc.repo.Delete(ctx, id); err != nil {
			out.Failed++
			out.FailedIDs = append(out.FailedIDs, id)
			continue
		}
		out.Deleted++
	}
	out.Message = fmt.Sprintf("%d supprimé(s), %d erreur(s)", out.Deleted, out.Failed)
	return out, nil
}

// toItemResponse mappe l'entité vers le DTO en dérivant le statut.
func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		Price:       it.Price,
		MinQuantity: it.MinQuantity,
		Status:      string(stock.Classify(it.Quantity, it.MinQuantity)),
		DateAdded:   it.DateAdded,
		UpdatedAt:   it.UpdatedAt,
	}
}
