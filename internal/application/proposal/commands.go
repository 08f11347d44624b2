// Package proposal contiene la sesión de edición de propuestas y los casos de
// uso de cotización, historial y PDF.
package proposal

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// Command cambio tipado sobre un grupo de campos del formulario.
type Command interface {
	apply(f *entity.FormState)
}

// SetClient reemplaza los datos del cliente.
type SetClient struct{ Client entity.ClientInfo }

// ChangeProduct cambia de producto; cantidades y adicionales vuelven a cero.
type ChangeProduct struct{ Product pricing.Product }

// SetUsage reemplaza las cantidades solicitadas.
type SetUsage struct{ Usage pricing.UsageQuantities }

// SetAddons reemplaza módulos y entrenamientos.
type SetAddons struct{ Addons pricing.Addons }

// SetDiscounts reemplaza la tasa de setup y los tres descuentos.
type SetDiscounts struct {
	SetupFee  decimal.Decimal
	Discounts entity.Discounts
}

// SetMigration reemplaza la migración.
type SetMigration struct{ Migration pricing.MigrationSpec }

// SetExtras reemplaza la lista de servicios extra.
type SetExtras struct{ Extras []pricing.ExtraServiceLine }

// SetTerms reemplaza las condiciones comerciales.
type SetTerms struct{ Terms entity.Terms }

func (c SetClient) apply(f *entity.FormState) { f.Client = c.Client }

func (c ChangeProduct) apply(f *entity.FormState) {
	if f.Product == c.Product {
		return
	}
	f.Product = c.Product
	f.Usage = pricing.UsageQuantities{}
	f.Addons = pricing.Addons{}
}

func (c SetUsage) apply(f *entity.FormState) { f.Usage = c.Usage.Normalize() }

func (c SetAddons) apply(f *entity.FormState) { f.Addons = c.Addons }

func (c SetDiscounts) apply(f *entity.FormState) {
	f.SetupFee = decimal.Max(c.SetupFee, decimal.Zero)
	f.Discounts = c.Discounts
}

func (c SetMigration) apply(f *entity.FormState) { f.Migration = c.Migration }

func (c SetExtras) apply(f *entity.FormState) {
	f.Extras = make([]pricing.ExtraServiceLine, len(c.Extras))
	copy(f.Extras, c.Extras)
}

func (c SetTerms) apply(f *entity.FormState) {
	t := c.Terms
	t.SetupInstallments = max(1, t.SetupInstallments)
	t.AnnualInstallments = max(1, t.AnnualInstallments)
	if t.ValidityDays <= 0 {
		t.ValidityDays = f.Terms.ValidityDays
	}
	if t.BillingCycle == "" {
		t.BillingCycle = pricing.CycleMonthly
	}
	f.Terms = t
}

// Reduce aplica el comando sobre una copia; f no se modifica.
func Reduce(f entity.FormState, cmd Command) entity.FormState {
	next := f.Clone()
	cmd.apply(&next)
	return next
}
