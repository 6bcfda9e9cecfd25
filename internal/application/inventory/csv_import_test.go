package inventory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelort/cafe-manager-api/internal/application/inventory"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

func TestMapCategory_LibellesLibres(t *testing.T) {
	cases := map[string]string{
		"Glace / Dessert": entity.CategorySurgele,
		"SURGELÉS":        entity.CategorySurgele,
		"fruits":          entity.CategoryFrais,
		"Produits frais":  entity.CategoryFrais,
		"Épicerie":        entity.CategoryAutres,
		"n'importe quoi":  entity.CategoryAutres, // inconnu -> Autres
	}
	for label, want := range cases {
		assert.Equal(t, want, inventory.MapCategory(label), "libellé %q", label)
	}
}

func TestMapUnit_Alias(t *testing.T) {
	assert.Equal(t, entity.UnitPiece, inventory.MapUnit("pcs"))
	assert.Equal(t, entity.UnitL, inventory.MapUnit("Litres"))
	assert.Equal(t, "", inventory.MapUnit("tonneau"))
}

func TestImportCSV_EnTeteIgnoreeEtErreursAgregees(t *testing.T) {
	repo := newFakeItemRepo()
	uc := inventory.NewUseCase(repo)

	csvData := strings.Join([]string{
		`Nom,Catégorie,Quantité,Unité,Prix,Seuil`,
		`"Glace vanille","Glace / Dessert",4,L,12.50,2`,
		`"Tomates","Fruits / Légumes",8,kg,3.20,5`,
		`"Sans unité","Frais",2,tonneau,1.00,1`, // unité inconnue
		`"","Frais",2,kg,1.00,1`,                // nom vide
	}, "\n")

	resp, err := uc.ImportCSV(context.Background(), strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors[0], "ligne 4")
	assert.Contains(t, resp.Errors[1], "ligne 5")
	assert.Equal(t, "2 importé(s), 2 erreur(s)", resp.Message)

	// La catégorie libre est bien ramenée au référentiel.
	items, _ := repo.List(context.Background(), 100, 0)
	byName := make(map[string]string, len(items))
	for _, it := range items {
		byName[it.Name] = it.Category
	}
	assert.Equal(t, entity.CategorySurgele, byName["Glace vanille"])
	assert.Equal(t, entity.CategoryFrais, byName["Tomates"])
}

func TestImportCSV_SansEnTete(t *testing.T) {
	uc := inventory.NewUseCase(newFakeItemRepo())

	resp, err := uc.ImportCSV(context.Background(), strings.NewReader(
		`"Beurre","Frais",3,kg,8.90,1`+"\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 0, resp.Failed)
}
