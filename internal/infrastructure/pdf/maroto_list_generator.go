// Package pdf génère le bon de commande imprimable de la liste de courses.
//
// Layout de la page A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Liste de courses + date            │
//	│  ─────────────────────────────────────────  │
//	│  TABLE: Produit | Quantité | Unité | Prio   │
//	│  ─────────────────────────────────────────  │
//	│  FOOTER: nombre d'articles                  │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
)

var (
	colorPrimary = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoListGenerator implémente shoppinglist.PDFGenerator avec Maroto v2.
type MarotoListGenerator struct {
	appName string
}

var _ shoppinglist.PDFGenerator = (*MarotoListGenerator)(nil)

// NewMarotoListGenerator construit le générateur.
func NewMarotoListGenerator(appName string) *MarotoListGenerator {
	return &MarotoListGenerator{appName: appName}
}

// GenerateShoppingListPDF génère le PDF et renvoie ses octets.
func (g *MarotoListGenerator) GenerateShoppingListPDF(
	_ context.Context,
	rows []shoppinglist.ExportRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Liste de courses", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	date := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LISTE DE COURSES", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Articles commandés auprès des fournisseurs", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Édité le "+date, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Produit", 6),
		header("Quantité", 2),
		header("Unité", 2),
		header("Priorité", 2),
	)
}

func tableRow(r shoppinglist.ExportRow) core.Row {
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 9, Top: 1}))
	}
	return row.New(6).Add(
		cell(r.Name, 6),
		cell(r.Quantity.String(), 2),
		cell(r.Unit, 2),
		cell(r.Priority, 2),
	)
}

func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d article(s) à recevoir", count), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
