// Package stock contient les règles pures du stock (service de domaine):
// classification du statut d'un article et calcul des besoins de réapprovisionnement.
package stock

import "github.com/shopspring/decimal"

// Status statut dérivé d'un article.
type Status string

const (
	StatusOut       Status = "out"
	StatusLow       Status = "low"
	StatusAvailable Status = "available"
)

var (
	one          = decimal.NewFromInt(1)
	lowRatioHigh = decimal.NewFromFloat(0.3) // sous 30% du seuil -> priorité haute
)

// Classify calcule le statut d'un article à partir de (quantité, seuil minimum).
// Fonction pure et totale:
//   - quantité == 0                  -> rupture
//   - seuil > 0 et quantité < seuil  -> bas
//   - sinon                          -> disponible
func Classify(quantity, minQuantity decimal.Decimal) Status {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StatusOut
	}
	if minQuantity.GreaterThan(decimal.Zero) && quantity.LessThan(minQuantity) {
		return StatusLow
	}
	return StatusAvailable
}

// NeededQuantity calcule la quantité à commander par défaut pour remonter au seuil:
// max(seuil - quantité actuelle, 1).
func NeededQuantity(currentQuantity, minQuantity decimal.Decimal) decimal.Decimal {
	need := minQuantity.Sub(currentQuantity)
	if need.LessThan(one) {
		return one
	}
	return need
}

// PriorityFor applique la règle de priorité par paliers:
// rupture -> urgente; sous 30% du seuil -> haute; sinon -> moyenne.
func PriorityFor(currentQuantity, minQuantity decimal.Decimal) string {
	if currentQuantity.LessThanOrEqual(decimal.Zero) {
		return "urgent"
	}
	if minQuantity.GreaterThan(decimal.Zero) && currentQuantity.LessThan(minQuantity.Mul(lowRatioHigh)) {
		return "high"
	}
	return "medium"
}
