package shoppinglist_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
)

func TestExportCSV_EnTeteEtGuillemets(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, `Poulet "fermier"`, 0, 4)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))

	out, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Produit","Quantité","Unité","Priorité"`, lines[0])
	// Guillemets internes doublés, priorité en libellé français.
	assert.Equal(t, `"Poulet ""fermier""","4","kg","urgente"`, lines[1])
}

func TestExportCSV_SeulesLesEntreesCommandees(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Lait", 1, 6)

	// Entrée pending: ne doit pas figurer dans l'export.
	_, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)

	out, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Len(t, lines, 1) // en-tête seule
}

func TestExportTXT_ListeLisible(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Tomates", 2, 10)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))

	out, err := uc.ExportTXT(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "LISTE DE COURSES : articles commandés\n"))
	assert.Contains(t, string(out), "Tomates")
	assert.Contains(t, string(out), "kg")
}

type fakePDFGen struct {
	rows []shoppinglist.ExportRow
}

func (g *fakePDFGen) GenerateShoppingListPDF(_ context.Context, rows []shoppinglist.ExportRow) ([]byte, error) {
	g.rows = rows
	return []byte("%PDF-1.7"), nil
}

func TestExportPDF_DelegueAuGenerateur(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Tomates", 2, 10)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))

	gen := &fakePDFGen{}
	out, err := uc.ExportPDF(context.Background(), gen)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
	require.Len(t, gen.rows, 1)
	assert.Equal(t, "Tomates", gen.rows[0].Name)
}
