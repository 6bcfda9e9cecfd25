package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// ItemRepository définit le port de persistance pour les articles du stock (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	// ListBelowMinimum renvoie les articles dont la quantité est sous le seuil minimum
	// (seuil > 0), triés par déficit décroissant.
	ListBelowMinimum(ctx context.Context) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
