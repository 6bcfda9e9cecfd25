package inventory

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB, en passant un repository
// d'articles lié à cette transaction. Garantit l'atomicité de l'inventaire physique:
// toutes les lignes modifiées sont appliquées, ou aucune.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error
}

// LowStockPromoter promeut les articles sous le seuil vers la liste de courses.
// Implémenté par shoppinglist.UseCase; l'interface évite l'import circulaire.
type LowStockPromoter interface {
	AutoAddLowStock(ctx context.Context) (int, error)
}
