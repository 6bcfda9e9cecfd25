package repository

import (
	"context"
	"time"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// OrderRepository définit le port de persistance pour les commandes POS.
type OrderRepository interface {
	// Create persiste la commande et ses lignes. À utiliser via TxRunner pour
	// garantir l'atomicité commande + lignes.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Order, error)
	// MarkPaid passe la commande en payée avec le moyen de paiement.
	MarkPaid(ctx context.Context, id, paymentMethod string, paidAt time.Time) error
	MarkCancelled(ctx context.Context, id string) error
}
