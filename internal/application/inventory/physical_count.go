package inventory

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// PhysicalCountUseCase applique une session d'inventaire physique: l'opérateur
// saisit les quantités observées, le serveur ignore les lignes inchangées et
// applique toutes les autres dans UNE transaction (unité de travail, pas
// d'application partielle en cas d'échec). Après commit, les articles passés
// sous le seuil sont promus vers la liste de courses.
type PhysicalCountUseCase struct {
	txRunner TxRunner
	promoter LowStockPromoter
}

// NewPhysicalCountUseCase construit le cas d'usage.
func NewPhysicalCountUseCase(txRunner TxRunner, promoter LowStockPromoter) *PhysicalCountUseCase {
	return &PhysicalCountUseCase{txRunner: txRunner, promoter: promoter}
}

// Apply valide puis applique le lot de comptage.
//   - quantité négative ou article dupliqué dans le lot -> ErrInvalidInput;
//   - article inconnu -> ErrNotFound et rollback du lot entier;
//   - ligne dont la quantité observée égale la quantité système -> ignorée.
func (uc *PhysicalCountUseCase) Apply(ctx context.Context, in dto.PhysicalCountRequest) (*dto.PhysicalCountResponse, error) {
	if len(in.Counts) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(in.Counts))
	for _, line := range in.Counts {
		if line.ItemID == "" || line.NewQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[line.ItemID]; dup {
			return nil, domain.ErrInvalidInput
		}
		seen[line.ItemID] = struct{}{}
	}

	out := &dto.PhysicalCountResponse{}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		for _, line := range in.Counts {
			item, err := itemRepo.GetByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Quantity.Equal(line.NewQuantity) {
				out.Unchanged++
				continue
			}
			if err := itemRepo.UpdateQuantity(ctx, line.ItemID, line.NewQuantity); err != nil {
				return err
			}
			out.Updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Promotion automatique après commit; un échec ici n'annule pas le comptage.
	if uc.promoter != nil {
		added, err := uc.promoter.AutoAddLowStock(ctx)
		if err == nil {
			out.AutoAdded = added
		}
	}
	return out, nil
}
