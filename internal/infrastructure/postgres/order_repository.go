package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implémentation du port OrderRepository sur PostgreSQL.
// Create doit être appelé dans une transaction (via TxRunner) pour garantir
// l'atomicité commande + lignes.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construit l'adaptateur de persistance des commandes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create insère la commande puis ses lignes.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, number, status, tax_rate, total_ht, total_ttc, payment_method, created_by, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Number, order.Status, order.TaxRate, order.TotalHT,
		order.TotalTTC, order.PaymentMethod, order.CreatedBy, order.CreatedAt, order.PaidAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	lineQuery := `
		INSERT INTO order_lines (id, order_id, name, unit_price, quantity, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range order.Lines {
		if _, err := r.q.Exec(ctx, lineQuery,
			l.ID, order.ID, l.Name, l.UnitPrice, l.Quantity, l.Total,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID récupère une commande avec ses lignes.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, number, status, tax_rate, total_ht, total_ttc,
		       COALESCE(payment_method, ''), created_by, created_at, paid_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Number, &o.Status, &o.TaxRate, &o.TotalHT, &o.TotalTTC,
		&o.PaymentMethod, &o.CreatedBy, &o.CreatedAt, &o.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	return &o, nil
}

// List liste les commandes créées sur [from, to], les plus récentes d'abord.
func (r *OrderRepo) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, status, tax_rate, total_ht, total_ttc,
		       COALESCE(payment_method, ''), created_by, created_at, paid_at
		FROM orders
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.Status, &o.TaxRate, &o.TotalHT, &o.TotalTTC,
			&o.PaymentMethod, &o.CreatedBy, &o.CreatedAt, &o.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range out {
		o.Lines = lines[o.ID]
	}
	return out, nil
}

// MarkPaid passe une commande en paid avec le moyen de paiement et l'horodatage.
func (r *OrderRepo) MarkPaid(ctx context.Context, id, paymentMethod string, paidAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = 'paid', payment_method = $2, paid_at = $3 WHERE id = $1`,
		id, paymentMethod, paidAt,
	)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkCancelled passe une commande en cancelled.
func (r *OrderRepo) MarkCancelled(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = 'cancelled' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark order cancelled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// linesFor charge les lignes d'un lot de commandes, groupées par commande.
func (r *OrderRepo) linesFor(ctx context.Context, orderIDs []string) (map[string][]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, name, unit_price, quantity, total
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.OrderLine)
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Name, &l.UnitPrice, &l.Quantity, &l.Total); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		out[l.OrderID] = append(out[l.OrderID], l)
	}
	return out, rows.Err()
}
