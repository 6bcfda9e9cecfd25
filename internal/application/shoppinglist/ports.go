package shoppinglist

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB avec les repositories
// liés à cette transaction. Utilisé pour la réception de commande: passage de
// l'entrée en "received" et incrément du stock dans la même transaction.
type TxRunner interface {
	RunShopping(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		listRepo repository.ShoppingListRepository,
	) error) error
}

// ExportRow ligne de l'export de la liste de courses (articles commandés).
type ExportRow struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Priority string // libellé français, ex: "urgente"
}

// PDFGenerator génère le bon de commande PDF de la liste de courses.
// Implémenté par infrastructure/pdf (Maroto).
type PDFGenerator interface {
	GenerateShoppingListPDF(ctx context.Context, rows []ExportRow) ([]byte, error)
}
