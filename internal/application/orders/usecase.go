package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

// TVA restauration sur place par défaut (10%).
var defaultTaxRate = decimal.NewFromFloat(0.10)

// UseCase cas d'usage des commandes POS: saisie en caisse, encaissement, annulation.
// Les prix saisis sont TTC; le HT est dérivé du taux de TVA de la commande.
type UseCase struct {
	orderRepo repository.OrderRepository
	txRunner  TxRunner
}

// NewUseCase construit le cas d'usage.
func NewUseCase(orderRepo repository.OrderRepository, txRunner TxRunner) *UseCase {
	return &UseCase{orderRepo: orderRepo, txRunner: txRunner}
}

// Create enregistre une nouvelle commande avec ses lignes (transactionnel).
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	taxRate := defaultTaxRate
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() || in.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, domain.ErrInvalidInput
		}
		taxRate = *in.TaxRate
	}

	now := time.Now()
	orderID := uuid.New().String()
	totalTTC := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Name == "" || !l.Quantity.IsPositive() || l.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := l.UnitPrice.Mul(l.Quantity)
		totalTTC = totalTTC.Add(lineTotal)
		lines = append(lines, entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Total:     lineTotal,
		})
	}
	totalHT := totalTTC.Div(decimal.NewFromInt(1).Add(taxRate)).Round(2)

	order := &entity.Order{
		ID:        orderID,
		Number:    newOrderNumber(orderID, now),
		Status:    entity.OrderStatusOpen,
		TaxRate:   taxRate,
		TotalHT:   totalHT,
		TotalTTC:  totalTTC.Round(2),
		CreatedBy: userID,
		CreatedAt: now,
		Lines:     lines,
	}

	err := uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID récupère une commande avec ses lignes.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List liste les commandes de la période avec pagination.
func (uc *UseCase) List(ctx context.Context, from, to time.Time, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(ctx, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Pay encaisse une commande en cours.
func (uc *UseCase) Pay(ctx context.Context, id string, in dto.PayOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusOpen {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	if err := uc.orderRepo.MarkPaid(ctx, id, in.PaymentMethod, now); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusPaid
	order.PaymentMethod = in.PaymentMethod
	order.PaidAt = &now
	return toOrderResponse(order), nil
}

// Cancel annule une commande en cours (une commande payée ne s'annule pas).
func (uc *UseCase) Cancel(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusOpen {
		return domain.ErrConflict
	}
	return uc.orderRepo.MarkCancelled(ctx, id)
}

// newOrderNumber construit un numéro lisible: CMD-AAAAMMJJ-xxxxxx (suffixe de l'ID).
func newOrderNumber(orderID string, now time.Time) string {
	suffix := strings.ReplaceAll(orderID, "-", "")
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("CMD-%s-%s", now.Format("20060102"), suffix)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Total:     l.Total,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		Status:        o.Status,
		TaxRate:       o.TaxRate,
		TotalHT:       o.TotalHT,
		TotalTTC:      o.TotalTTC,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		PaidAt:        o.PaidAt,
		Lines:         lines,
	}
}
