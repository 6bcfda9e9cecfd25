package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddEntryRequest body pour POST /api/shopping-list/add.
// QuantityNeeded et Priority sont optionnels: le serveur les calcule depuis
// l'état du stock s'ils sont omis (max(seuil-actuel, 1) et règle par paliers).
type AddEntryRequest struct {
	ItemID         string           `json:"item_id"`
	QuantityNeeded *decimal.Decimal `json:"quantity_needed,omitempty"`
	Priority       string           `json:"priority,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// UpdateEntryRequest body pour PUT /api/shopping-list/:id (mise à jour partielle).
type UpdateEntryRequest struct {
	QuantityNeeded *decimal.Decimal `json:"quantity_needed,omitempty"`
	Priority       *string          `json:"priority,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// EntryResponse représentation d'une entrée de la liste de courses.
type EntryResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name,omitempty"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
	Unit           string          `json:"unit"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	AddedAt        time.Time       `json:"added_at"`
}

// EntryListResponse réponse de GET /api/shopping-list.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}

// AutoAddResponse résultat de POST /api/shopping-list/auto-add-low-stock.
type AutoAddResponse struct {
	Added int `json:"added"`
}
