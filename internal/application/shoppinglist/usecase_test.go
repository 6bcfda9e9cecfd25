package shoppinglist_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// fakeItemRepo store d'articles minimal pour les tests de la liste de courses.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(_ context.Context, id string, quantity decimal.Decimal) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *fakeItemRepo) List(_ context.Context, _, _ int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowMinimum(_ context.Context) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.MinQuantity.IsPositive() && it.Quantity.LessThan(it.MinQuantity) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// fakeListRepo store de la liste de courses qui reproduit l'invariant "au plus
// une entrée active par article" (comme l'index unique partiel en base).
type fakeListRepo struct {
	entries     map[string]*entity.ShoppingEntry
	itemNames   map[string]string
	createCalls int
}

var _ repository.ShoppingListRepository = (*fakeListRepo)(nil)

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		entries:   make(map[string]*entity.ShoppingEntry),
		itemNames: make(map[string]string),
	}
}

func (r *fakeListRepo) activeFor(itemID string) *entity.ShoppingEntry {
	for _, e := range r.entries {
		if e.ItemID == itemID && e.Active() {
			return e
		}
	}
	return nil
}

func (r *fakeListRepo) Create(_ context.Context, entry *entity.ShoppingEntry) error {
	r.createCalls++
	if r.activeFor(entry.ItemID) != nil {
		return domain.ErrDuplicate
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeListRepo) GetByID(_ context.Context, id string) (*entity.ShoppingEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeListRepo) GetActiveByItem(_ context.Context, itemID string) (*entity.ShoppingEntry, error) {
	if e := r.activeFor(itemID); e != nil {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeListRepo) ListByStatus(_ context.Context, statuses []string) ([]repository.EntryRow, error) {
	match := func(e *entity.ShoppingEntry) bool {
		if len(statuses) == 0 {
			return e.Active()
		}
		for _, s := range statuses {
			if e.Status == s {
				return true
			}
		}
		return false
	}
	var out []repository.EntryRow
	for _, e := range r.entries {
		if match(e) {
			out = append(out, repository.EntryRow{Entry: *e, ItemName: r.itemNames[e.ItemID]})
		}
	}
	return out, nil
}

func (r *fakeListRepo) Update(_ context.Context, entry *entity.ShoppingEntry) error {
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeListRepo) UpdateStatus(_ context.Context, id, status string) error {
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeListRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeListRepo) InsertMissing(_ context.Context, entries []*entity.ShoppingEntry) (int, error) {
	inserted := 0
	for _, e := range entries {
		if r.activeFor(e.ItemID) != nil {
			continue
		}
		cp := *e
		r.entries[e.ID] = &cp
		inserted++
	}
	return inserted, nil
}

type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	listRepo *fakeListRepo
}

var _ shoppinglist.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunShopping(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	listRepo repository.ShoppingListRepository,
) error) error {
	return fn(r.itemRepo, r.listRepo)
}

func newTestUseCase() (*shoppinglist.UseCase, *fakeItemRepo, *fakeListRepo) {
	itemRepo := newFakeItemRepo()
	listRepo := newFakeListRepo()
	uc := shoppinglist.NewUseCase(listRepo, itemRepo, &fakeTxRunner{itemRepo: itemRepo, listRepo: listRepo})
	return uc, itemRepo, listRepo
}

func seedItem(r *fakeItemRepo, names *fakeListRepo, name string, qty, min float64) string {
	id := uuid.New().String()
	r.items[id] = &entity.Item{
		ID:          id,
		Name:        name,
		Category:    entity.CategoryFrais,
		Quantity:    decimal.NewFromFloat(qty),
		Unit:        entity.UnitKg,
		Price:       decimal.NewFromFloat(4.20),
		MinQuantity: decimal.NewFromFloat(min),
	}
	names.itemNames[id] = name
	return id
}

func TestAdd_DefautsCalculesDepuisLeStock(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Tomates", 0, 10)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.QuantityNeeded.Equal(decimal.NewFromInt(10)), "max(seuil - actuel, 1)")
	assert.Equal(t, entity.PriorityUrgent, resp.Priority, "rupture -> urgent")
	assert.Equal(t, entity.EntryStatusPending, resp.Status)
	assert.Equal(t, "Tomates", resp.ItemName)
}

func TestAdd_ArticleInconnu(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: "inexistant"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_DoublonActifRefuse(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Tomates", 2, 10)

	_, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	_, err = uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAdd_DoublonDetecteAvantInsertion(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Tomates", 2, 10)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	// Entrée commandée mais non reçue: toujours active.
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))
	createsAvant := listRepo.createCalls

	_, err = uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, createsAvant, listRepo.createCalls,
		"le doublon doit être détecté par la pré-vérification, sans tentative d'insertion")
}

func TestAutoAddLowStock_Idempotent(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	seedItem(itemRepo, listRepo, "Lait", 1, 6)
	seedItem(itemRepo, listRepo, "Beurre", 0, 2)
	seedItem(itemRepo, listRepo, "Farine", 20, 5) // au-dessus du seuil

	added, err := uc.AutoAddLowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Second appel sans mouvement de stock: rien à ajouter.
	added, err = uc.AutoAddLowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestMarkReceived_IncrementeLeStock(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Lait", 1, 6)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))
	require.NoError(t, uc.MarkReceived(context.Background(), resp.ID))

	item, _ := itemRepo.GetByID(context.Background(), id)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(6)), "1 + 5 commandés")

	entry, _ := listRepo.GetByID(context.Background(), resp.ID)
	assert.Equal(t, entity.EntryStatusReceived, entry.Status)
}

func TestMarkReceived_DejaRecue(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Lait", 1, 6)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkReceived(context.Background(), resp.ID))

	err = uc.MarkReceived(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)
}

func TestMarkOrdered_DepuisOrderedRefuse(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Lait", 1, 6)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), resp.ID))

	err = uc.MarkOrdered(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdate_EntreeRecueNonModifiable(t *testing.T) {
	uc, itemRepo, listRepo := newTestUseCase()
	id := seedItem(itemRepo, listRepo, "Lait", 1, 6)

	resp, err := uc.Add(context.Background(), dto.AddEntryRequest{ItemID: id})
	require.NoError(t, err)
	require.NoError(t, uc.MarkReceived(context.Background(), resp.ID))

	qty := decimal.NewFromInt(3)
	_, err = uc.Update(context.Background(), resp.ID, dto.UpdateEntryRequest{QuantityNeeded: &qty})
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)
}

func TestList_FiltreStatutInvalide(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.List(context.Background(), "archived")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
