// Package catalog expone planes y tarifas para los selectores del front-end.
package catalog

import (
	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// UseCase lectura del catálogo de planes (datos estáticos).
type UseCase struct{}

func NewUseCase() *UseCase { return &UseCase{} }

// Plans tiers del producto con precio base e inclusiones, más su tabla de tarifas.
// Productos inactivos devuelven lista vacía y tarifas en cero.
func (uc *UseCase) Plans(product string) (*dto.PlanCatalogResponse, error) {
	p, err := pricing.ParseProduct(product)
	if err != nil {
		return nil, err
	}
	out := &dto.PlanCatalogResponse{
		Product:     p,
		ProductName: p.DisplayName(),
		Active:      p.Active(),
		Plans:       []dto.PlanDTO{},
		RateCard:    pricing.RateCardFor(p),
	}
	for _, def := range pricing.Plans(p) {
		out.Plans = append(out.Plans, dto.PlanDTO{
			Tier:       def.Tier,
			Name:       def.Name(),
			BasePrice:  def.BasePrice,
			Inclusions: def.Inclusions,
		})
	}
	return out, nil
}

// Products lista cerrada de productos.
func (uc *UseCase) Products() []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(pricing.Products))
	for _, p := range pricing.Products {
		out = append(out, dto.ProductDTO{Product: p, Name: p.DisplayName(), Active: p.Active()})
	}
	return out
}
