package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/inventory"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// fakeTxRunner simule la transaction: instantané du store avant fn, restauration
// complète si fn échoue (mêmes garanties de rollback qu'en base).
type fakeTxRunner struct {
	repo *fakeItemRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error {
	snapshot := make(map[string]*entity.Item, len(r.repo.items))
	for id, it := range r.repo.items {
		cp := *it
		snapshot[id] = &cp
	}
	if err := fn(r.repo); err != nil {
		r.repo.items = snapshot
		return err
	}
	return nil
}

type fakePromoter struct {
	added int
	calls int
}

func (p *fakePromoter) AutoAddLowStock(context.Context) (int, error) {
	p.calls++
	return p.added, nil
}

func TestPhysicalCount_NAppliqueQueLesLignesModifiees(t *testing.T) {
	repo := newFakeItemRepo()
	idFarine := seedItem(repo, "Farine", 10, 2)
	idLait := seedItem(repo, "Lait", 6, 2)
	promoter := &fakePromoter{}
	uc := inventory.NewPhysicalCountUseCase(&fakeTxRunner{repo: repo}, promoter)

	resp, err := uc.Apply(context.Background(), dto.PhysicalCountRequest{
		Counts: []dto.PhysicalCountLine{
			{ItemID: idFarine, NewQuantity: decimal.NewFromInt(10)}, // inchangée
			{ItemID: idLait, NewQuantity: decimal.NewFromInt(4)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Unchanged)
	assert.Equal(t, 1, promoter.calls)

	lait, _ := repo.GetByID(context.Background(), idLait)
	assert.True(t, lait.Quantity.Equal(decimal.NewFromInt(4)))
}

func TestPhysicalCount_ArticleInconnu_RollbackDuLot(t *testing.T) {
	repo := newFakeItemRepo()
	idFarine := seedItem(repo, "Farine", 10, 2)
	uc := inventory.NewPhysicalCountUseCase(&fakeTxRunner{repo: repo}, &fakePromoter{})

	_, err := uc.Apply(context.Background(), dto.PhysicalCountRequest{
		Counts: []dto.PhysicalCountLine{
			{ItemID: idFarine, NewQuantity: decimal.NewFromInt(3)},
			{ItemID: "inexistant", NewQuantity: decimal.NewFromInt(1)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	// La première ligne ne doit pas avoir été appliquée.
	farine, _ := repo.GetByID(context.Background(), idFarine)
	assert.True(t, farine.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestPhysicalCount_QuantiteNegative_Rejetee(t *testing.T) {
	repo := newFakeItemRepo()
	id := seedItem(repo, "Sucre", 5, 1)
	uc := inventory.NewPhysicalCountUseCase(&fakeTxRunner{repo: repo}, &fakePromoter{})

	_, err := uc.Apply(context.Background(), dto.PhysicalCountRequest{
		Counts: []dto.PhysicalCountLine{{ItemID: id, NewQuantity: decimal.NewFromInt(-2)}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPhysicalCount_ArticleDuplique_Rejete(t *testing.T) {
	repo := newFakeItemRepo()
	id := seedItem(repo, "Sucre", 5, 1)
	uc := inventory.NewPhysicalCountUseCase(&fakeTxRunner{repo: repo}, &fakePromoter{})

	_, err := uc.Apply(context.Background(), dto.PhysicalCountRequest{
		Counts: []dto.PhysicalCountLine{
			{ItemID: id, NewQuantity: decimal.NewFromInt(2)},
			{ItemID: id, NewQuantity: decimal.NewFromInt(3)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPhysicalCount_LotVide_Rejete(t *testing.T) {
	uc := inventory.NewPhysicalCountUseCase(&fakeTxRunner{repo: newFakeItemRepo()}, &fakePromoter{})

	_, err := uc.Apply(context.Background(), dto.PhysicalCountRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
