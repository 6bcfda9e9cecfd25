package repository

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// EntryRow entrée de la liste de courses enrichie du nom de l'article (jointure).
type EntryRow struct {
	Entry    entity.ShoppingEntry
	ItemName string
}

// ShoppingListRepository définit le port de persistance pour la liste de courses.
//
// L'invariant "au plus une entrée active par article" est garanti ici (index unique
// partiel sur item_id quand status IN (pending, ordered)): Create renvoie
// domain.ErrDuplicate si une entrée active existe déjà, InsertMissing les ignore.
type ShoppingListRepository interface {
	Create(ctx context.Context, entry *entity.ShoppingEntry) error
	GetByID(ctx context.Context, id string) (*entity.ShoppingEntry, error)
	GetActiveByItem(ctx context.Context, itemID string) (*entity.ShoppingEntry, error)
	// ListByStatus renvoie les entrées dont le statut figure dans statuses
	// (vide = toutes les entrées actives), triées par priorité puis date d'ajout.
	ListByStatus(ctx context.Context, statuses []string) ([]EntryRow, error)
	Update(ctx context.Context, entry *entity.ShoppingEntry) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	// InsertMissing insère en bloc les entrées dont l'article n'a pas déjà une entrée
	// active, et renvoie le nombre réellement inséré. Idempotent par construction.
	InsertMissing(ctx context.Context, entries []*entity.ShoppingEntry) (int, error)
}
