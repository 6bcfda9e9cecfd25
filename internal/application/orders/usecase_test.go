package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/orders"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context, from, to time.Time, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) MarkPaid(_ context.Context, id, paymentMethod string, paidAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = entity.OrderStatusPaid
	o.PaymentMethod = paymentMethod
	o.PaidAt = &paidAt
	return nil
}

func (r *fakeOrderRepo) MarkCancelled(_ context.Context, id string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = entity.OrderStatusCancelled
	return nil
}

type fakeOrderTxRunner struct {
	repo *fakeOrderRepo
}

var _ orders.TxRunner = (*fakeOrderTxRunner)(nil)

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return fn(r.repo)
}

func newTestUseCase() (*orders.UseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	return orders.NewUseCase(repo, &fakeOrderTxRunner{repo: repo}), repo
}

func TestCreate_TotauxTTCetHT(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{
			{Name: "Café allongé", UnitPrice: decimal.NewFromFloat(2.50), Quantity: decimal.NewFromInt(2)},
			{Name: "Croissant", UnitPrice: decimal.NewFromFloat(1.80), Quantity: decimal.NewFromInt(1)},
		},
	})

	require.NoError(t, err)
	// TTC = 2×2.50 + 1.80 = 6.80 ; HT = 6.80 / 1.10 = 6.18
	assert.True(t, resp.TotalTTC.Equal(decimal.NewFromFloat(6.80)), "TTC = %s", resp.TotalTTC)
	assert.True(t, resp.TotalHT.Equal(decimal.NewFromFloat(6.18)), "HT = %s", resp.TotalHT)
	assert.Equal(t, entity.OrderStatusOpen, resp.Status)
	assert.Regexp(t, `^CMD-\d{8}-[0-9a-f]{6}$`, resp.Number)
	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].Total.Equal(decimal.NewFromFloat(5.00)))

	stored, _ := repo.GetByID(context.Background(), resp.ID)
	require.NotNil(t, stored)
	assert.Len(t, stored.Lines, 2)
}

func TestCreate_SansLignes(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TauxTVAHorsBornes(t *testing.T) {
	uc, _ := newTestUseCase()
	bad := decimal.NewFromInt(2)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		Lines:   []dto.OrderLineRequest{{Name: "Thé", UnitPrice: decimal.NewFromFloat(3.00), Quantity: decimal.NewFromInt(1)}},
		TaxRate: &bad,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPay_TransitionEtGarde(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{Name: "Thé", UnitPrice: decimal.NewFromFloat(3.00), Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	paid, err := uc.Pay(context.Background(), created.ID, dto.PayOrderRequest{PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// Déjà payée: conflit.
	_, err = uc.Pay(context.Background(), created.ID, dto.PayOrderRequest{PaymentMethod: entity.PaymentCash})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPay_MoyenDePaiementInvalide(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Pay(context.Background(), "peu-importe", dto.PayOrderRequest{PaymentMethod: "cheque"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancel_CommandePayeeRefusee(t *testing.T) {
	uc, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{Name: "Thé", UnitPrice: decimal.NewFromFloat(3.00), Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	_, err = uc.Pay(context.Background(), created.ID, dto.PayOrderRequest{PaymentMethod: entity.PaymentCash})
	require.NoError(t, err)

	err = uc.Cancel(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
