package orders

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB avec un repository de
// commandes lié à cette transaction (commande + lignes atomiques).
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
