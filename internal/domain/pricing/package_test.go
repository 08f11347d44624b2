package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

func monitoringTable(p pricing.Product) pricing.TierTable {
	return pricing.RateCardFor(p).Monitoring
}

// ──────────────────────────────────────────────────────────────────────────────
// Paquete cerrado: 1 crédito por encima de la franquicia cobra el paquete
// completo de la franja, no el crédito suelto.
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignPackage_UnCreditoCobraPaqueteCompleto(t *testing.T) {
	a := pricing.AssignPackage(monitoringTable(pricing.ProductOfficeADV), 501, 500)

	assert.Equal(t, 1, a.Excess)
	assert.Equal(t, 12, a.AnnualExcess)
	assert.Equal(t, 0, a.TierIndex)
	assert.Equal(t, 500, a.PackageLimit)
	assert.Equal(t, 6000, a.AnnualLimit)
	assert.False(t, a.Custom)
	assertDec(t, "150", a.Price)
	assert.True(t, a.Price.GreaterThan(a.UnitPrice), "cobra el paquete, no la unidad")
	assert.Equal(t, "Pacote 500/mês (6.000/ano)", a.UnitLabel())
}

func TestAssignPackage_LimiteAnualInclusivo(t *testing.T) {
	table := monitoringTable(pricing.ProductOfficeADV)

	at := pricing.AssignPackage(table, 500, 0)
	assert.Equal(t, 0, at.TierIndex)

	over := pricing.AssignPackage(table, 501, 0)
	assert.Equal(t, 1, over.TierIndex)
	assert.Equal(t, 1000, over.PackageLimit)
	assertDec(t, "200", over.Price)
}

func TestAssignPackage_FranjaPersonalizada(t *testing.T) {
	table := monitoringTable(pricing.ProductOfficeADV)

	a := pricing.AssignPackage(table, 5000, 0)
	assert.True(t, a.Custom)
	assert.Equal(t, 3, a.TierIndex)
	assert.Equal(t, 5000, a.PackageLimit)
	assert.Equal(t, 60000, a.AnnualLimit)
	assertDec(t, "600", a.Price)
	assert.Equal(t, "Pacote Personalizado 5.000/mês", a.UnitLabel())
}

func TestAssignPackage_PersonalizadaNoBajaDelUltimoPaquete(t *testing.T) {
	table := monitoringTable(pricing.ProductOfficeADV)

	last := pricing.AssignPackage(table, 2000, 0)
	first := pricing.AssignPackage(table, 2001, 0)

	assert.False(t, last.Custom)
	assert.True(t, first.Custom)
	assertDec(t, "300", last.Price)
	assertDec(t, "300", first.Price)
}

func TestAssignPackage_SinExcedenteSinCobro(t *testing.T) {
	a := pricing.AssignPackage(monitoringTable(pricing.ProductCPJ3CPlus), 5000, 5000)
	assert.Equal(t, 0, a.Excess)
	assert.Equal(t, -1, a.TierIndex)
	assert.True(t, a.Price.IsZero())
	assert.False(t, a.Charged())

	neg := pricing.AssignPackage(monitoringTable(pricing.ProductCPJ3CPlus), -10, 0)
	assert.Equal(t, 0, neg.Requested)
	assert.False(t, neg.Charged())
}

func TestAssignPackage_TablaVaciaNoCobra(t *testing.T) {
	a := pricing.AssignPackage(nil, 300, 0)
	assert.Equal(t, 300, a.Excess)
	assert.False(t, a.Charged())
}

func TestAssignPackage_TablasDistintasPorProducto(t *testing.T) {
	office := pricing.AssignPackage(pricing.RateCardFor(pricing.ProductOfficeADV).Protocols, 100, 0)
	cpj := pricing.AssignPackage(pricing.RateCardFor(pricing.ProductCPJ3CPlus).Protocols, 100, 0)

	assert.Equal(t, 125, office.PackageLimit)
	assertDec(t, "350", office.Price)
	assert.Equal(t, 250, cpj.PackageLimit)
	assertDec(t, "625", cpj.Price)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cantidades enormes: el excedente anual no desborda y el precio no baja.
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignPackage_CantidadEnormeNoDesborda(t *testing.T) {
	table := monitoringTable(pricing.ProductOfficeADV)
	ref := pricing.AssignPackage(table, 5000, 0)

	for _, requested := range []int{math.MaxInt / 6, math.MaxInt / 12, math.MaxInt} {
		a := pricing.AssignPackage(table, requested, 500)
		assert.True(t, a.Custom, "requested=%d", requested)
		assert.Equal(t, len(table)-1, a.TierIndex)
		assert.Positive(t, a.AnnualExcess)
		assert.True(t, a.Price.GreaterThanOrEqual(ref.Price), "requested=%d price=%s", requested, a.Price)
	}
	assert.Equal(t, math.MaxInt, pricing.AssignPackage(table, math.MaxInt, 0).AnnualExcess)
}

func TestUsageQuantities_NormalizeLimita(t *testing.T) {
	u := pricing.UsageQuantities{Users: -3, MonitoringCredits: math.MaxInt, Protocols: 10}.Normalize()

	assert.Equal(t, 0, u.Users)
	assert.Equal(t, pricing.MaxQuantity, u.MonitoringCredits)
	assert.Equal(t, 10, u.Protocols)
}
