package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// ── Escenarios de referencia ─────────────────────────────────────────────────

func TestPrice_Office7UsuariosPlanPRO(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product: pricing.ProductOfficeADV,
		Usage:   pricing.UsageQuantities{Users: 7},
	})

	assert.Equal(t, pricing.TierPro, r.Tier)
	assert.Equal(t, "Pacote Office PRO", r.PlanName)
	assertDec(t, "699", r.BasePrice)
	require.Len(t, r.MonthlyItems, 1)
	assertDec(t, "699", r.MonthlyBase)
	assertDec(t, "699", r.MonthlyFinal)
	assert.Empty(t, r.SetupItems)
	assertDec(t, "0", r.SetupFinal)
	assertDec(t, "8388", r.AnnualTotal)
	assertDec(t, "8388", r.AnnualFinal)
	assert.Equal(t, pricing.CycleMonthly, r.BillingCycle)
}

func TestPrice_CPJ30UsuariosSinCobroDeMonitoramento(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product: pricing.ProductCPJ3CPlus,
		Usage:   pricing.UsageQuantities{Users: 30, MonitoringCredits: 5000},
	})

	assert.Equal(t, pricing.TierInfinite, r.Tier)
	require.NotNil(t, r.Inclusions)
	assert.Equal(t, 40, r.Inclusions.Users)
	assert.Equal(t, 0, r.Exceedances.Monitoring.Excess)
	assert.False(t, r.Exceedances.Monitoring.Charged())
	assertDec(t, "4499", r.MonthlyBase)
}

func TestPrice_OfficeDiscovery2500(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product:   pricing.ProductOfficeADV,
		Migration: pricing.DiscoveryMigration(2500),
	})

	require.Len(t, r.SetupItems, 1)
	assertDec(t, "125", r.SetupItems[0].Value)
	assertDec(t, "125", r.SetupFinal)
}

func TestPrice_OfficeONEMonitoramento501(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product: pricing.ProductOfficeADV,
		Usage:   pricing.UsageQuantities{Users: 3, MonitoringCredits: 501},
	})

	assert.Equal(t, pricing.TierOne, r.Tier)
	m := r.Exceedances.Monitoring
	assertDec(t, "150", m.Price)
	assert.True(t, m.Price.GreaterThan(m.UnitPrice))
	assertDec(t, "549", r.MonthlyBase)
}

// ── Propuesta completa ───────────────────────────────────────────────────────

func fullOfficeInput() pricing.Input {
	return pricing.Input{
		Product: pricing.ProductOfficeADV,
		Usage: pricing.UsageQuantities{
			Users: 3, Publications: 5, Intimations: 2, MonitoringCredits: 501,
			DistributionProcesses: 10, AIDocs: 6, ConsultingHours: 2,
		},
		Addons:          pricing.Addons{FinanceModule: true, Starter: true},
		SetupFee:        d("1000"),
		MonthlyDiscount: pricing.PercentDiscount(d("10")),
		SetupDiscount:   pricing.ValueDiscount(d("349")),
		AnnualDiscount:  pricing.ValueDiscount(d("852.40")),
		Extras: []pricing.ExtraServiceLine{
			{ID: "x1", Description: "Suporte dedicado", Quantity: d("1"), UnitPrice: d("50"), Billing: pricing.BillingMonthly},
		},
		BillingCycle:       pricing.CycleAnnual,
		SetupInstallments:  4,
		AnnualInstallments: 12,
	}
}

func TestPrice_PropuestaCompletaOffice(t *testing.T) {
	r := pricing.Price(fullOfficeInput())

	assert.Equal(t, pricing.TierOne, r.Tier)

	keys := make([]string, 0, len(r.MonthlyItems))
	for _, it := range r.MonthlyItems {
		keys = append(keys, it.Key)
	}
	assert.Equal(t, []string{"plan", "publications", "intimations", "monitoring", "distribution", "ai-docs", "finance", "extra:x1"}, keys)

	dist := r.MonthlyItems[4]
	assert.Equal(t, "Pacote 20/mês (240/ano)", dist.UnitDescription)
	assertDec(t, "500", dist.Monthly)
	assertDec(t, "6000", dist.Annual)

	assertDec(t, "1653", r.MonthlyBase)
	assertDec(t, "1487.70", r.MonthlyFinal)
	assertDec(t, "165.30", r.MonthlyDiscountAmount)

	assertDec(t, "2349", r.SetupBase)
	assertDec(t, "2000", r.SetupFinal)
	assert.Equal(t, "setup-fee", r.SetupItems[0].Key)

	assertDec(t, "17852.40", r.AnnualTotal)
	assertDec(t, "17000", r.AnnualFinal)

	assert.Equal(t, pricing.CycleAnnual, r.BillingCycle)
	assert.Equal(t, 4, r.SetupInstallments.Count)
	assertDec(t, "500", r.SetupInstallments.Value)
	assertDec(t, "1416.67", r.AnnualInstallments.Value)
}

func TestPrice_Idempotente(t *testing.T) {
	in := fullOfficeInput()
	assert.Equal(t, pricing.Price(in), pricing.Price(in))
}

func TestPrice_DescuentosIndependientes(t *testing.T) {
	in := fullOfficeInput()
	base := pricing.Price(in)

	in.SetupDiscount = pricing.PercentDiscount(d("50"))
	otherSetup := pricing.Price(in)
	assert.True(t, base.MonthlyFinal.Equal(otherSetup.MonthlyFinal))
	assert.False(t, base.SetupFinal.Equal(otherSetup.SetupFinal))

	in = fullOfficeInput()
	in.MonthlyDiscount = pricing.NoDiscount()
	otherMonthly := pricing.Price(in)
	assert.True(t, base.SetupFinal.Equal(otherMonthly.SetupFinal))
	assert.False(t, base.MonthlyFinal.Equal(otherMonthly.MonthlyFinal))
}

func TestPrice_ProductoInactivo(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product:  pricing.ProductPromad,
		Usage:    pricing.UsageQuantities{Users: 3, MonitoringCredits: 100},
		SetupFee: d("500"),
	})

	assert.Nil(t, r.Inclusions)
	assert.Equal(t, "Pacote PROMAD", r.PlanName)
	assertDec(t, "0", r.MonthlyBase)
	assertDec(t, "500", r.SetupFinal)
}

func TestPrice_EntradasNegativasSeSujetanACero(t *testing.T) {
	r := pricing.Price(pricing.Input{
		Product:  pricing.ProductOfficeADV,
		Usage:    pricing.UsageQuantities{Users: -4, Publications: -10, MonitoringCredits: -1},
		SetupFee: d("-100"),
	})

	assert.Equal(t, pricing.TierOne, r.Tier)
	assertDec(t, "399", r.MonthlyBase)
	assertDec(t, "0", r.SetupBase)
}

func TestBuildPricingResult_TierExplicito(t *testing.T) {
	in := pricing.Input{Product: pricing.ProductOfficeADV, Usage: pricing.UsageQuantities{Users: 12}}
	r := pricing.BuildPricingResult(pricing.TierPro, in)

	assert.Equal(t, pricing.TierPro, r.Tier)
	assertDec(t, "859", r.MonthlyBase, "2 usuarios excedentes sobre PRO")
}
