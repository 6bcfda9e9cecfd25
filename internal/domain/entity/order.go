package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une commande POS.
const (
	OrderStatusOpen      = "open"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Moyens de paiement acceptés en caisse.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Order représente une commande saisie en caisse (POS).
// TotalTTC = somme des lignes; TotalHT = TotalTTC / (1 + TaxRate).
type Order struct {
	ID            string
	Number        string // ex: "CMD-20260830-0042"
	Status        string // open | paid | cancelled
	TaxRate       decimal.Decimal
	TotalHT       decimal.Decimal
	TotalTTC      decimal.Decimal
	PaymentMethod string // vide tant que non payée
	CreatedBy     string
	CreatedAt     time.Time
	PaidAt        *time.Time
	Lines         []OrderLine
}

// OrderLine représente une ligne de commande (produit vendu, prix TTC unitaire).
type OrderLine struct {
	ID        string
	OrderID   string
	Name      string
	UnitPrice decimal.Decimal // TTC
	Quantity  decimal.Decimal
	Total     decimal.Decimal // UnitPrice * Quantity
}

// ValidPaymentMethod vérifie qu'un moyen de paiement est accepté.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard
}
