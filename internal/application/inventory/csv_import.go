package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// Dictionnaire statique des libellés libres de catégorie -> catégorie canonique.
// Les clés sont normalisées (minuscules, sans accents, espaces réduits).
// Tout libellé inconnu retombe sur "Autres".
var categoryAliases = map[string]string{
	"surgele":         entity.CategorySurgele,
	"surgeles":        entity.CategorySurgele,
	"congele":         entity.CategorySurgele,
	"glace":           entity.CategorySurgele,
	"glaces":          entity.CategorySurgele,
	"glace / dessert": entity.CategorySurgele,
	"dessert glace":   entity.CategorySurgele,
	"frais":           entity.CategoryFrais,
	"produits frais":  entity.CategoryFrais,
	"fruits":          entity.CategoryFrais,
	"legumes":         entity.CategoryFrais,
	"fruits / legumes": entity.CategoryFrais,
	"viande":           entity.CategoryFrais,
	"poisson":          entity.CategoryFrais,
	"produits laitiers": entity.CategoryFrais,
	"boulangerie":       entity.CategoryFrais,
	"autres":            entity.CategoryAutres,
	"epicerie":          entity.CategoryAutres,
	"sec":               entity.CategoryAutres,
	"boissons":          entity.CategoryAutres,
}

// Unités libres tolérées -> unité canonique.
var unitAliases = map[string]string{
	"kg":     entity.UnitKg,
	"g":      entity.UnitG,
	"gr":     entity.UnitG,
	"l":      entity.UnitL,
	"litre":  entity.UnitL,
	"litres": entity.UnitL,
	"piece":  entity.UnitPiece,
	"pieces": entity.UnitPiece,
	"pc":     entity.UnitPiece,
	"pcs":    entity.UnitPiece,
	"unite":  entity.UnitPiece,
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldLabel normalise un libellé libre: accents retirés, minuscules, espaces réduits.
func foldLabel(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// MapCategory mappe un libellé libre vers l'une des trois catégories canoniques.
func MapCategory(label string) string {
	if c, ok := categoryAliases[foldLabel(label)]; ok {
		return c
	}
	return entity.CategoryAutres
}

// MapUnit mappe une unité libre vers une unité canonique ("" si inconnue).
func MapUnit(label string) string {
	if u, ok := unitAliases[foldLabel(label)]; ok {
		return u
	}
	return ""
}

// ImportCSV importe des articles depuis un CSV (champs entre guillemets acceptés).
// Colonnes attendues: nom, catégorie, quantité, unité, prix, seuil minimum.
// Une ligne d'en-tête est détectée et ignorée. Les lignes en erreur sont agrégées
// dans la réponse sans interrompre le lot.
func (uc *UseCase) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportCSVResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	out := &dto.ImportCSVResponse{}
	lineNo := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			out.Failed++
			out.Errors = append(out.Errors, fmt.Sprintf("ligne %d: CSV malformé", lineNo))
			continue
		}
		if lineNo == 1 && isHeaderRow(record) {
			continue
		}
		req, err := parseItemRow(record)
		if err != nil {
			out.Failed++
			out.Errors = append(out.Errors, fmt.Sprintf("ligne %d: %v", lineNo, err))
			continue
		}
		if _, err := uc.Create(ctx, *req); err != nil {
			out.Failed++
			out.Errors = append(out.Errors, fmt.Sprintf("ligne %d: %v", lineNo, err))
			continue
		}
		out.Imported++
	}
	out.Message = fmt.Sprintf("%d importé(s), %d erreur(s)", out.Imported, out.Failed)
	return out, nil
}

// isHeaderRow détecte une ligne d'en-tête (la colonne quantité n'est pas numérique).
func isHeaderRow(record []string) bool {
	if len(record) < 3 {
		return false
	}
	_, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	return err != nil
}

// parseItemRow convertit une ligne CSV en requête de création d'article.
func parseItemRow(record []string) (*dto.CreateItemRequest, error) {
	if len(record) < 6 {
		return nil, fmt.Errorf("6 colonnes attendues, %d reçue(s)", len(record))
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, fmt.Errorf("nom vide")
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil || quantity.IsNegative() {
		return nil, fmt.Errorf("quantité invalide: %q", record[2])
	}
	unit := MapUnit(record[3])
	if unit == "" {
		return nil, fmt.Errorf("unité inconnue: %q", record[3])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("prix invalide: %q", record[4])
	}
	minQty, err := decimal.NewFromString(strings.TrimSpace(record[5]))
	if err != nil || minQty.IsNegative() {
		return nil, fmt.Errorf("seuil invalide: %q", record[5])
	}
	return &dto.CreateItemRequest{
		Name:        name,
		Category:    MapCategory(record[1]),
		Quantity:    quantity,
		Unit:        unit,
		Price:       price,
		MinQuantity: minQty,
	}, nil
}
