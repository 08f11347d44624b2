package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// PlanDTO plan de un tier con su precio base.
type PlanDTO struct {
	Tier       pricing.Tier         `json:"tier"`
	Name       string               `json:"name"`
	BasePrice  decimal.Decimal      `json:"basePrice"`
	Inclusions pricing.InclusionSet `json:"inclusions"`
}

// PlanCatalogResponse respuesta de GET /api/plans/:product.
type PlanCatalogResponse struct {
	Product     pricing.Product  `json:"product"`
	ProductName string           `json:"productName"`
	Active      bool             `json:"active"`
	Plans       []PlanDTO        `json:"plans"`
	RateCard    pricing.RateCard `json:"rateCard"`
}

// ProductDTO elemento de GET /api/plans.
type ProductDTO struct {
	Product pricing.Product `json:"product"`
	Name    string          `json:"name"`
	Active  bool            `json:"active"`
}
