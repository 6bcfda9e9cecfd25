package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest ligne d'une commande à créer.
type OrderLineRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"` // TTC
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateOrderRequest body pour POST /api/orders.
type CreateOrderRequest struct {
	Lines   []OrderLineRequest `json:"lines"`
	TaxRate *decimal.Decimal   `json:"tax_rate,omitempty"` // défaut: 10% (restauration sur place)
}

// PayOrderRequest body pour POST /api/orders/:id/pay.
type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method"` // cash | card
}

// OrderLineResponse ligne d'une commande.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// OrderResponse représentation d'une commande POS.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	Status        string              `json:"status"`
	TaxRate       decimal.Decimal     `json:"tax_rate"`
	TotalHT       decimal.Decimal     `json:"total_ht"`
	TotalTTC      decimal.Decimal     `json:"total_ttc"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	Lines         []OrderLineResponse `json:"lines"`
}

// OrderListResponse réponse paginée de GET /api/orders.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
