package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult agrégat de ventes d'un produit sur une période.
type TopProductResult struct {
	Name       string
	UnitsSold  decimal.Decimal
	RevenueTTC decimal.Decimal
}

// AnalyticsRepository définit le port des requêtes read-only du tableau de bord.
// Seules les commandes payées entrent dans les agrégats.
type AnalyticsRepository interface {
	// GetRevenueMetrics renvoie (CA TTC, CA HT, nombre de commandes) sur [start, end].
	GetRevenueMetrics(ctx context.Context, start, end time.Time) (ttc, ht decimal.Decimal, orders int, err error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
}
