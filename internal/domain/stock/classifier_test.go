package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jdelort/cafe-manager-api/internal/domain/stock"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Quantité nulle -> rupture, quel que soit le seuil.
func TestClassify_QuantiteNulle_Rupture(t *testing.T) {
	assert.Equal(t, stock.StatusOut, stock.Classify(dec(0), dec(0)))
	assert.Equal(t, stock.StatusOut, stock.Classify(dec(0), dec(5)))
	assert.Equal(t, stock.StatusOut, stock.Classify(dec(0), dec(1000)))
}

// 0 < quantité < seuil (seuil > 0) -> bas.
func TestClassify_SousLeSeuil_Bas(t *testing.T) {
	assert.Equal(t, stock.StatusLow, stock.Classify(dec(2), dec(5)))
	assert.Equal(t, stock.StatusLow, stock.Classify(dec(4.5), dec(5)))
	assert.Equal(t, stock.StatusLow, stock.Classify(dec(0.1), dec(0.2)))
}

// Quantité >= seuil, ou seuil nul -> disponible.
func TestClassify_AuDessusOuSansSeuil_Disponible(t *testing.T) {
	assert.Equal(t, stock.StatusAvailable, stock.Classify(dec(5), dec(5)))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(dec(10), dec(5)))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(dec(3), dec(0)))
}

// Scénario du tableau de stock: {quantité:2, seuil:5} -> bas; après mise à 0 -> rupture.
func TestClassify_PassageBasVersRupture(t *testing.T) {
	assert.Equal(t, stock.StatusLow, stock.Classify(dec(2), dec(5)))
	assert.Equal(t, stock.StatusOut, stock.Classify(dec(0), dec(5)))
}

// Quantité à commander par défaut: max(seuil - actuel, 1).
func TestNeededQuantity(t *testing.T) {
	assert.True(t, dec(10).Equal(stock.NeededQuantity(dec(0), dec(10))))
	assert.True(t, dec(3).Equal(stock.NeededQuantity(dec(2), dec(5))))
	// Déjà au-dessus du seuil: minimum 1 quand même
	assert.True(t, dec(1).Equal(stock.NeededQuantity(dec(8), dec(5))))
	assert.True(t, dec(1).Equal(stock.NeededQuantity(dec(5), dec(5))))
}

// Règle de priorité par paliers: rupture -> urgente, <30% du seuil -> haute, sinon moyenne.
func TestPriorityFor(t *testing.T) {
	assert.Equal(t, "urgent", stock.PriorityFor(dec(0), dec(10)))
	assert.Equal(t, "high", stock.PriorityFor(dec(2), dec(10)))  // 2 < 3 (30% de 10)
	assert.Equal(t, "medium", stock.PriorityFor(dec(3), dec(10)))
	assert.Equal(t, "medium", stock.PriorityFor(dec(9), dec(10)))
	// Sans seuil, jamais haute
	assert.Equal(t, "medium", stock.PriorityFor(dec(1), dec(0)))
}

// Article vide avec seuil 10: la liste de courses doit proposer 10 en urgente.
func TestBesoinEtPriorite_ArticleEnRupture(t *testing.T) {
	current, min := dec(0), dec(10)
	assert.True(t, dec(10).Equal(stock.NeededQuantity(current, min)))
	assert.Equal(t, "urgent", stock.PriorityFor(current, min))
}
