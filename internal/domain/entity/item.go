package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catégories canoniques du stock du café.
const (
	CategorySurgele = "Surgelé"
	CategoryFrais   = "Frais"
	CategoryAutres  = "Autres"
)

// Unités acceptées pour les articles.
const (
	UnitKg    = "kg"
	UnitG     = "g"
	UnitL     = "L"
	UnitPiece = "pièce"
)

// Item représente un article du stock (ingrédient ou produit du café).
// Le statut (rupture/bas/disponible) n'est jamais stocké: il est recalculé
// à chaque lecture à partir de Quantity et MinQuantity (voir stock.Classify).
type Item struct {
	ID          string
	Name        string
	Category    string // Surgelé | Frais | Autres
	Quantity    decimal.Decimal
	Unit        string // kg | g | L | pièce
	Price       decimal.Decimal
	MinQuantity decimal.Decimal // seuil de réapprovisionnement; 0 = pas de seuil
	DateAdded   time.Time
	UpdatedAt   time.Time
}

// ValidCategory vérifie qu'une catégorie fait partie des trois canoniques.
func ValidCategory(c string) bool {
	return c == CategorySurgele || c == CategoryFrais || c == CategoryAutres
}

// ValidUnit vérifie qu'une unité est acceptée.
func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitG || u == UnitL || u == UnitPiece
}
