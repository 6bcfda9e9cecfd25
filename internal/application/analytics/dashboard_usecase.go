// Package analytics contient le cas d'usage du tableau de bord financier.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // nombre de produits dans le widget du dashboard

// SummaryCache cache optionnel du résumé (Redis en production, nil pour désactiver).
type SummaryCache interface {
	Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool)
	Set(ctx context.Context, summary *dto.DashboardSummaryDTO)
}

// DashboardUseCase génère le résumé financier du jour et du mois en cours.
//
// Source de données: AnalyticsRepository (requêtes read-only).
// N'accède jamais directement aux tables de commandes; tout passe par le repository.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         SummaryCache
}

// NewDashboardUseCase construit le cas d'usage. cache peut être nil.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache}
}

// GetSummary construit le DashboardSummaryDTO.
//
// Trois requêtes en parallèle:
//  1. GetRevenueMetrics(aujourd'hui) → CA TTC/HT + commandes du jour
//  2. GetRevenueMetrics(mois)        → CA TTC/HT + commandes du mois
//  3. GetTopProducts(mois, top 5)    → TopProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	now := time.Now()

	// Aujourd'hui: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mois en cours: le 1er à 00:00 – aujourd'hui à 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		ttc    decimal.Decimal
		ht     decimal.Decimal
		orders int
		err    error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		ttc, ht, orders, err := uc.analyticsRepo.GetRevenueMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{ttc, ht, orders, err}
	}()
	go func() {
		ttc, ht, orders, err := uc.analyticsRepo.GetRevenueMetrics(ctx, monthStart, monthEnd)
		monthCh <- metricsResult{ttc, ht, orders, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métriques du jour: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métriques du mois: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top produits: %w", top.err)
	}

	products := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		products = append(products, dto.TopProductDTO{
			Name:       p.Name,
			UnitsSold:  p.UnitsSold,
			RevenueTTC: p.RevenueTTC.Round(2),
		})
	}

	summary := &dto.DashboardSummaryDTO{
		TodayRevenueTTC: today.ttc.Round(2),
		TodayRevenueHT:  today.ht.Round(2),
		TodayOrders:     today.orders,
		MonthRevenueTTC: month.ttc.Round(2),
		MonthRevenueHT:  month.ht.Round(2),
		MonthOrders:     month.orders,
		TopProducts:     products,
		DateLabel:       monthLabel(now),
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, summary)
	}
	return summary, nil
}

// monthLabel renvoie une étiquette lisible du mois, ex: "Août 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
