package dto

import "github.com/shopspring/decimal"

// TopProductDTO produit le plus vendu sur la période.
type TopProductDTO struct {
	Name       string          `json:"name"`
	UnitsSold  decimal.Decimal `json:"units_sold"`
	RevenueTTC decimal.Decimal `json:"revenue_ttc"`
}

// DashboardSummaryDTO résumé financier du jour et du mois en cours.
// Seules les commandes payées entrent dans les chiffres.
type DashboardSummaryDTO struct {
	TodayRevenueTTC decimal.Decimal `json:"today_revenue_ttc"`
	TodayRevenueHT  decimal.Decimal `json:"today_revenue_ht"`
	TodayOrders     int             `json:"today_orders"`
	MonthRevenueTTC decimal.Decimal `json:"month_revenue_ttc"`
	MonthRevenueHT  decimal.Decimal `json:"month_revenue_ht"`
	MonthOrders     int             `json:"month_orders"`
	TopProducts     []TopProductDTO `json:"top_products"`
	DateLabel       string          `json:"date_label"` // ex: "Août 2026"
}
