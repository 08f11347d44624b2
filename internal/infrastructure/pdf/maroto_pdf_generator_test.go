package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propostas-api/internal/application/proposal"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
	"github.com/jhoicas/Propostas-api/internal/infrastructure/pdf"
)

func document(t *testing.T, withDates bool) *proposal.QuoteDocument {
	t.Helper()
	issued := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f := entity.NewFormState(pricing.ProductOfficeADV, 30)
	f.Client = entity.ClientInfo{Name: "Escritório Silva & Associados", Document: "12.345.678/0001-90", City: "São Paulo"}
	f.Usage = pricing.UsageQuantities{Users: 8, MonitoringCredits: 1200, Protocols: 300, ConsultingHours: 2}
	f.Addons = pricing.Addons{Starter: true, TrainingFinance: true}
	f.SetupFee = decimal.NewFromInt(500)
	f.Discounts.Monthly = pricing.PercentDiscount(decimal.NewFromInt(10))
	f.Migration = pricing.DiscoveryMigration(2500)
	f.Terms.BillingCycle = pricing.CycleAnnual
	f.Terms.AnnualInstallments = 12
	f.Terms.PaymentConditions = "Boleto bancário\nVencimento dia 10"
	f.Terms.Observations = "Valores sujeitos a reajuste anual."
	if withDates {
		setup := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		monthly := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
		f.Terms.SetupPaymentDate = &setup
		f.Terms.MonthlyStartDate = &monthly
	}
	res := pricing.Price(f.PricingInput())
	return &proposal.QuoteDocument{
		CompanyName: "Preâmbulo Tech",
		Number:      "PROP-20260310-AB12C",
		IssuedAt:    issued,
		ValidUntil:  issued.AddDate(0, 0, 30),
		Consultant:  entity.ConsultantProfile{Name: "Ana Souza", Email: "ana@preambulo.com.br", Phone: "11 99999-0000"},
		Form:        f,
		Pricing:     res,
		Schedule: pricing.BuildPaymentSchedule(res.SetupFinal, res.MonthlyFinal,
			f.Terms.SetupPaymentDate, f.Terms.MonthlyStartDate),
	}
}

func TestGenerateQuotePDF_DocumentoCompleto(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator()
	for _, withDates := range []bool{false, true} {
		b, err := gen.GenerateQuotePDF(context.Background(), document(t, withDates))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe empezar con la cabecera PDF")
		assert.Greater(t, len(b), 1000)
	}
}

func TestGenerateQuotePDF_SinConsultorNiInclusiones(t *testing.T) {
	f := entity.NewFormState(pricing.ProductPromad, 30)
	doc := &proposal.QuoteDocument{
		Number:     "PROP-20260310-00000",
		IssuedAt:   time.Now(),
		ValidUntil: time.Now().AddDate(0, 0, 30),
		Form:       f,
		Pricing:    pricing.Price(f.PricingInput()),
	}
	b, err := pdf.NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestGenerateQuotePDF_DocumentoNil(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), nil)
	assert.Error(t, err)
}
