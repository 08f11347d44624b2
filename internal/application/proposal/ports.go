package proposal

import (
	"context"
	"time"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// QuoteDocument todo lo que el generador necesita para imprimir la propuesta.
type QuoteDocument struct {
	CompanyName string
	Number      string
	IssuedAt    time.Time
	ValidUntil  time.Time
	Consultant  entity.ConsultantProfile
	Form        entity.FormState
	Pricing     pricing.PricingResult
	Schedule    pricing.PaymentSchedule
}

// PDFGenerator genera la propuesta imprimible.
type PDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, doc *QuoteDocument) ([]byte, error)
}
