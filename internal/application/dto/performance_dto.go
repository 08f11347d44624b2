package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// PerformanceFilter parámetros de GET /api/dashboard/performance.
// Period: today | week | month | custom. Start/End en YYYY-MM-DD (solo custom).
type PerformanceFilter struct {
	Period string `query:"period"`
	Start  string `query:"start"`
	End    string `query:"end"`
}

// PerformanceDTO indicadores de las propuestas del período.
type PerformanceDTO struct {
	Period      string    `json:"period"`
	PeriodLabel string    `json:"periodLabel"` // ej: "Últimos 7 dias"
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`

	TotalProposals int             `json:"totalProposals"`
	MonthlyTotal   decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal    decimal.Decimal `json:"annualTotal"` // monthlyTotal × 12
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
	SetupTotal     decimal.Decimal `json:"setupTotal"`

	ByProduct []ProductPerformanceDTO `json:"byProduct"`
}

// ProductPerformanceDTO desglose por producto (solo productos con propuestas).
type ProductPerformanceDTO struct {
	Product      pricing.Product `json:"erp"`
	ProductName  string          `json:"productName"`
	Count        int             `json:"count"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	SetupTotal   decimal.Decimal `json:"setupTotal"`
}
