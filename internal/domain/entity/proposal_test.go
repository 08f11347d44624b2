package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// ── FormState ────────────────────────────────────────────────────────────────

func TestNewFormState_ValoresPorDefecto(t *testing.T) {
	f := entity.NewFormState(pricing.ProductOfficeADV, 15)

	assert.Equal(t, pricing.ProductOfficeADV, f.Product)
	assert.True(t, f.SetupFee.IsZero())
	assert.Equal(t, pricing.DiscountNone, f.Discounts.Monthly.Kind)
	assert.Equal(t, pricing.MigrationNone, f.Migration.Kind)
	assert.Equal(t, 15, f.Terms.ValidityDays)
	assert.Equal(t, pricing.CycleMonthly, f.Terms.BillingCycle)
	assert.Equal(t, 1, f.Terms.SetupInstallments)
	assert.Equal(t, 1, f.Terms.AnnualInstallments)
}

func TestFormState_CloneIndependiente(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	f := entity.NewFormState(pricing.ProductCPJ3CPlus, 30)
	f.Extras = []pricing.ExtraServiceLine{{ID: "x1", Description: "Treinamento", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)}}
	f.Terms.MonthlyStartDate = &start

	c := f.Clone()
	c.Extras[0].Description = "Alterado"
	*c.Terms.MonthlyStartDate = start.AddDate(0, 1, 0)

	assert.Equal(t, "Treinamento", f.Extras[0].Description)
	assert.Equal(t, start, *f.Terms.MonthlyStartDate)
}

func TestFormState_PricingInput(t *testing.T) {
	f := entity.NewFormState(pricing.ProductOfficeADV, 30)
	f.Usage.Users = 7
	f.SetupFee = decimal.NewFromInt(500)
	f.Discounts.Monthly = pricing.PercentDiscount(decimal.NewFromInt(10))
	f.Terms.BillingCycle = pricing.CycleAnnual
	f.Terms.AnnualInstallments = 12

	in := f.PricingInput()
	assert.Equal(t, pricing.ProductOfficeADV, in.Product)
	assert.Equal(t, 7, in.Usage.Users)
	assert.True(t, in.SetupFee.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, pricing.DiscountPercent, in.MonthlyDiscount.Kind)
	assert.Equal(t, pricing.CycleAnnual, in.BillingCycle)
	assert.Equal(t, 12, in.AnnualInstallments)
}

// ── ConsultantProfile ────────────────────────────────────────────────────────

func TestConsultantProfile_PublicYPasscode(t *testing.T) {
	c := entity.ConsultantProfile{Name: "Ana", Email: "ana@x.com", PasscodeHash: "$2a$10$hash"}
	require.True(t, c.HasPasscode())

	pub := c.Public()
	assert.Empty(t, pub.PasscodeHash)
	assert.False(t, pub.HasPasscode())
	assert.Equal(t, "Ana", pub.Name)
	assert.Equal(t, "$2a$10$hash", c.PasscodeHash)
}

func TestConsultantProfile_Complete(t *testing.T) {
	assert.True(t, entity.ConsultantProfile{Name: "Ana", Email: "ana@x.com"}.Complete())
	assert.False(t, entity.ConsultantProfile{Name: "  ", Email: "ana@x.com"}.Complete())
	assert.False(t, entity.ConsultantProfile{Name: "Ana"}.Complete())
}

// ── SavedProposal ────────────────────────────────────────────────────────────

func TestSavedProposal_ValidUntil(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := &entity.SavedProposal{CreatedAt: created, Form: entity.NewFormState(pricing.ProductOfficeADV, 15)}
	assert.Equal(t, created.AddDate(0, 0, 15), p.ValidUntil())

	p.Form.Terms.ValidityDays = 0
	assert.Equal(t, created.AddDate(0, 0, 30), p.ValidUntil())
}

func TestSavedProposal_CloneIndependiente(t *testing.T) {
	p := &entity.SavedProposal{ID: "p1", Form: entity.NewFormState(pricing.ProductOfficeADV, 30)}
	p.Form.Extras = []pricing.ExtraServiceLine{{ID: "x1"}}

	c := p.Clone()
	c.ID = "p2"
	c.Form.Extras[0].ID = "x2"

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "x1", p.Form.Extras[0].ID)
}
