package dto

import "github.com/shopspring/decimal"

// StatusCount ventas del día en un estado.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DailySummaryResponse resumen de fin de día. AlreadyShown indica que el usuario
// ya confirmó el resumen de esa fecha.
type DailySummaryResponse struct {
	Date             string          `json:"date"`
	Total            int             `json:"total"`
	ByStatus         []StatusCount   `json:"by_status"`
	EstimatedRevenue decimal.Decimal `json:"estimated_revenue"`
	AlreadyShown     bool            `json:"already_shown"`
}
