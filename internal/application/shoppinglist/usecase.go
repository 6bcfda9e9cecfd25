package shoppinglist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
	"github.com/jdelort/cafe-manager-api/internal/domain/stock"
)

// UseCase cas d'usage de la liste de courses: ajout/retrait, transitions de statut
// (pending -> ordered -> received) et promotion automatique des articles sous le seuil.
//
// L'invariant "une seule entrée active par article" est garanti par le repository
// (index unique partiel), pas par la logique cliente.
type UseCase struct {
	listRepo repository.ShoppingListRepository
	itemRepo repository.ItemRepository
	txRunner TxRunner
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	listRepo repository.ShoppingListRepository,
	itemRepo repository.ItemRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{listRepo: listRepo, itemRepo: itemRepo, txRunner: txRunner}
}

// List renvoie les entrées filtrées par statut.
// statusFilter vide = entrées actives (pending + ordered).
func (uc *UseCase) List(ctx context.Context, statusFilter string) (*dto.EntryListResponse, error) {
	var statuses []string
	switch statusFilter {
	case "":
		statuses = nil // le repository renvoie les actives
	case entity.EntryStatusPending, entity.EntryStatusOrdered, entity.EntryStatusReceived:
		statuses = []string{statusFilter}
	default:
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.listRepo.ListByStatus(ctx, statuses)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toEntryResponse(&r.Entry, r.ItemName))
	}
	return &dto.EntryListResponse{Items: items, Total: len(items)}, nil
}

// Add ajoute un article à la liste de courses. Si la quantité ou la priorité sont
// omises, le serveur les calcule depuis l'état du stock: max(seuil - actuel, 1) et
// règle par paliers (rupture -> urgent, <30% du seuil -> high, sinon medium).
// Renvoie l'entrée créée avec son ID (le client met à jour sa carte sans refetch).
func (uc *UseCase) Add(ctx context.Context, in dto.AddEntryRequest) (*dto.EntryResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	// Pré-vérification pour une erreur propre; l'index unique partiel reste le
	// garde-fou en cas d'ajout concurrent.
	active, err := uc.listRepo.GetActiveByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrDuplicate
	}

	needed := stock.NeededQuantity(item.Quantity, item.MinQuantity)
	if in.QuantityNeeded != nil {
		if !in.QuantityNeeded.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		needed = *in.QuantityNeeded
	}
	priority := stock.PriorityFor(item.Quantity, item.MinQuantity)
	if in.Priority != "" {
		if !entity.ValidPriority(in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		priority = in.Priority
	}

	now := time.Now()
	entry := &entity.ShoppingEntry{
		ID:             uuid.New().String(),
		ItemID:         item.ID,
		QuantityNeeded: needed,
		Unit:           item.Unit,
		Priority:       priority,
		Status:         entity.EntryStatusPending,
		Notes:          in.Notes,
		AddedAt:        now,
		UpdatedAt:      now,
	}
	if err := uc.listRepo.Create(ctx, entry); err != nil {
		return nil, err // ErrDuplicate si une entrée active existe déjà pour cet article
	}
	resp := toEntryResponse(entry, item.Name)
	return &resp, nil
}

// Update met à jour une entrée (partiel). Une entrée reçue n'est plus modifiable.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := uc.listRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if !entry.Active() {
		return nil, domain.ErrAlreadyReceived
	}
	if in.QuantityNeeded != nil {
		if !in.QuantityNeeded.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		entry.QuantityNeeded = *in.QuantityNeeded
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		entry.Priority = *in.Priority
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}
	entry.UpdatedAt = time.Now()
	if err := uc.listRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	resp := toEntryResponse(entry, "")
	return &resp, nil
}

// Delete supprime une entrée (possible à tout stade).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.listRepo.Delete(ctx, id)
}

// MarkOrdered passe une entrée de pending à ordered.
func (uc *UseCase) MarkOrdered(ctx context.Context, id string) error {
	entry, err := uc.listRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if entry.Status != entity.EntryStatusPending {
		return domain.ErrConflict
	}
	return uc.listRepo.UpdateStatus(ctx, id, entity.EntryStatusOrdered)
}

// MarkReceived passe une entrée en received ET incrémente le stock de l'article
// de la quantité commandée, dans la même transaction.
func (uc *UseCase) MarkReceived(ctx context.Context, id string) error {
	return uc.txRunner.RunShopping(ctx, func(
		itemRepo repository.ItemRepository,
		listRepo repository.ShoppingListRepository,
	) error {
		entry, err := listRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if entry.Status == entity.EntryStatusReceived {
			return domain.ErrAlreadyReceived
		}
		item, err := itemRepo.GetByID(ctx, entry.ItemID)
		if err != nil {
			return err
		}
		if item != nil {
			newQty := item.Quantity.Add(entry.QuantityNeeded)
			if err := itemRepo.UpdateQuantity(ctx, item.ID, newQty); err != nil {
				return err
			}
		}
		return listRepo.UpdateStatus(ctx, id, entity.EntryStatusReceived)
	})
}

// AutoAddLowStock promeut en bloc les articles sous le seuil vers la liste de courses.
// Idempotent: les articles ayant déjà une entrée active sont ignorés par le
// repository (upsert), donc un second appel sans mouvement de stock ajoute 0.
func (uc *UseCase) AutoAddLowStock(ctx context.Context) (int, error) {
	items, err := uc.itemRepo.ListBelowMinimum(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	now := time.Now()
	entries := make([]*entity.ShoppingEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, &entity.ShoppingEntry{
			ID:             uuid.New().String(),
			ItemID:         it.ID,
			QuantityNeeded: stock.NeededQuantity(it.Quantity, it.MinQuantity),
			Unit:           it.Unit,
			Priority:       stock.PriorityFor(it.Quantity, it.MinQuantity),
			Status:         entity.EntryStatusPending,
			AddedAt:        now,
			UpdatedAt:      now,
		})
	}
	return uc.listRepo.InsertMissing(ctx, entries)
}

func toEntryResponse(e *entity.ShoppingEntry, itemName string) dto.EntryResponse {
	return dto.EntryResponse{
		ID:             e.ID,
		ItemID:         e.ItemID,
		ItemName:       itemName,
		QuantityNeeded: e.QuantityNeeded,
		Unit:           e.Unit,
		Priority:       e.Priority,
		Status:         e.Status,
		Notes:          e.Notes,
		AddedAt:        e.AddedAt,
	}
}
