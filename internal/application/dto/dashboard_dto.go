package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen del día para la pantalla principal del dueño.
type DashboardStatsDTO struct {
	TodaySales          decimal.Decimal         `json:"todaySales"`
	TodayProfit         decimal.Decimal         `json:"todayProfit"`
	TodayOrders         int                     `json:"todayOrders"`
	TodayWaste          decimal.Decimal         `json:"todayWaste"`
	LowStockItems       []MaterialResponse      `json:"lowStockItems"`
	PurchaseSuggestions []PurchaseSuggestionDTO `json:"purchaseSuggestions"`
	PresentEmployees    int                     `json:"presentEmployees"`
	TotalEmployees      int                     `json:"totalEmployees"`
}
