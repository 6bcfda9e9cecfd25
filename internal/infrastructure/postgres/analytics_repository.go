package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo requêtes read-only du tableau de bord. Seules les commandes
// payées entrent dans les agrégats (paid_at dans la période).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construit l'adaptateur d'analytique.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetRevenueMetrics renvoie CA TTC, CA HT et nombre de commandes payées sur [start, end].
// COALESCE renvoie zéro pour une période sans ventes.
func (r *AnalyticsRepo) GetRevenueMetrics(
	ctx context.Context,
	start, end time.Time,
) (ttc, ht decimal.Decimal, orders int, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_ttc), 0) AS revenue_ttc,
	    COALESCE(SUM(total_ht),  0) AS revenue_ht,
	    COUNT(*)                    AS order_count
	FROM orders
	WHERE status = 'paid'
	  AND paid_at BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, start, end).Scan(&ttc, &ht, &orders)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("analytics.GetRevenueMetrics: %w", err)
	}
	return ttc, ht, orders, nil
}

// GetTopProducts renvoie les `limit` produits les plus vendus sur la période,
// classés par chiffre d'affaires TTC décroissant.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	start, end time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    l.name,
	    SUM(l.quantity) AS units_sold,
	    SUM(l.total)    AS revenue_ttc
	FROM order_lines l
	JOIN orders o ON o.id = l.order_id
	WHERE o.status = 'paid'
	  AND o.paid_at BETWEEN $1 AND $2
	GROUP BY l.name
	ORDER BY revenue_ttc DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.Name, &row.UnitsSold, &row.RevenueTTC); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	if results == nil {
		results = []repository.TopProductResult{}
	}
	return results, nil
}
