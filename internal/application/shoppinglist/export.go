package shoppinglist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// Libellés français des priorités pour les exports lisibles.
var priorityLabels = map[string]string{
	entity.PriorityUrgent: "urgente",
	entity.PriorityHigh:   "haute",
	entity.PriorityMedium: "moyenne",
	entity.PriorityLow:    "basse",
}

// exportRows charge les entrées commandées (status=ordered), prêtes à exporter.
func (uc *UseCase) exportRows(ctx context.Context) ([]ExportRow, error) {
	rows, err := uc.listRepo.ListByStatus(ctx, []string{entity.EntryStatusOrdered})
	if err != nil {
		return nil, err
	}
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		label := priorityLabels[r.Entry.Priority]
		if label == "" {
			label = r.Entry.Priority
		}
		out = append(out, ExportRow{
			Name:     r.ItemName,
			Quantity: r.Entry.QuantityNeeded,
			Unit:     r.Entry.Unit,
			Priority: label,
		})
	}
	return out, nil
}

// ExportCSV exporte les articles commandés au format CSV.
// En-tête: Produit,Quantité,Unité,Priorité, tous les champs entre guillemets.
func (uc *UseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := uc.exportRows(ctx)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString(`"Produit","Quantité","Unité","Priorité"` + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s\n",
			quote(r.Name), quote(r.Quantity.String()), quote(r.Unit), quote(r.Priority))
	}
	return []byte(b.String()), nil
}

// ExportTXT exporte les articles commandés en texte brut (liste à imprimer).
func (uc *UseCase) ExportTXT(ctx context.Context) ([]byte, error) {
	rows, err := uc.exportRows(ctx)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString("LISTE DE COURSES : articles commandés\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s : %s %s (priorité %s)\n", r.Name, r.Quantity.String(), r.Unit, r.Priority)
	}
	return []byte(b.String()), nil
}

// ExportPDF génère le bon de commande PDF via le générateur injecté.
func (uc *UseCase) ExportPDF(ctx context.Context, gen PDFGenerator) ([]byte, error) {
	rows, err := uc.exportRows(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GenerateShoppingListPDF(ctx, rows)
}

// quote encadre un champ CSV de guillemets, en doublant les guillemets internes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
