package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body pour POST /api/inventory.
type CreateItemRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

// UpdateItemRequest body pour PUT /api/inventory/:id (mise à jour partielle).
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinQuantity *decimal.Decimal `json:"min_quantity,omitempty"`
}

// ItemResponse représentation d'un article. Status est dérivé (jamais stocké).
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Status      string          `json:"status"` // out | low | available
	DateAdded   time.Time       `json:"date_added"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse réponse paginée de GET /api/inventory.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// BulkDeleteRequest body pour POST /api/inventory/bulk-delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse résultat par lot: N supprimé(s), M erreur(s).
type BulkDeleteResponse struct {
	Deleted   int      `json:"deleted"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
	Message   string   `json:"message"` // ex: "2 supprimé(s), 1 erreur(s)"
}

// PhysicalCountLine quantité observée pour un article lors d'un inventaire physique.
type PhysicalCountLine struct {
	ItemID      string          `json:"item_id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// PhysicalCountRequest body pour POST /api/inventory/physical-count.
type PhysicalCountRequest struct {
	Counts []PhysicalCountLine `json:"counts"`
}

// PhysicalCountResponse résultat de l'inventaire physique: les lignes inchangées
// sont ignorées, les autres appliquées dans UNE transaction; AutoAdded est le nombre
// d'articles promus vers la liste de courses après coup.
type PhysicalCountResponse struct {
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	AutoAdded int `json:"auto_added"`
}

// ImportCSVResponse résultat de l'import CSV: les lignes en erreur sont agrégées
// sans interrompre le lot.
type ImportCSVResponse struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
	Message  string   `json:"message"` // ex: "12 importé(s), 2 erreur(s)"
}
