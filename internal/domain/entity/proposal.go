package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// DefaultClientName nombre usado cuando la propuesta se guarda sin cliente.
const DefaultClientName = "Sem nome"

// ConsultantProfile datos del consultor que firma las propuestas.
type ConsultantProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	// PasscodeHash bcrypt de la clave opcional que protege la sesión.
	PasscodeHash string `json:"passcodeHash,omitempty"`
}

// Public copia sin la clave; es la que se guarda en cada propuesta.
func (c ConsultantProfile) Public() ConsultantProfile {
	c.PasscodeHash = ""
	return c
}

// HasPasscode indica si emitir sesión exige clave.
func (c ConsultantProfile) HasPasscode() bool { return c.PasscodeHash != "" }

// Complete indica si el perfil tiene los campos obligatorios.
func (c ConsultantProfile) Complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Email) != ""
}

// ClientInfo datos del cliente de la propuesta.
type ClientInfo struct {
	Name     string `json:"name"`
	Document string `json:"document"` // CNPJ/CPF
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// Discounts descuentos independientes por total.
type Discounts struct {
	Monthly pricing.DiscountSpec `json:"monthly"`
	Setup   pricing.DiscountSpec `json:"setup"`
	Annual  pricing.DiscountSpec `json:"annual"`
}

// Terms condiciones comerciales de la propuesta.
type Terms struct {
	ValidityDays       int                  `json:"validityDays"`
	BillingCycle       pricing.BillingCycle `json:"billingCycle"`
	SetupInstallments  int                  `json:"setupInstallments"`
	AnnualInstallments int                  `json:"annualInstallments"`
	SetupPaymentDate   *time.Time           `json:"setupPaymentDate,omitempty"`
	MonthlyStartDate   *time.Time           `json:"monthlyStartDate,omitempty"`
	PaymentConditions  string               `json:"paymentConditions"`
	Observations       string               `json:"observations"`
}

// FormState estado completo del formulario de propuesta.
type FormState struct {
	Client    ClientInfo                 `json:"client"`
	Product   pricing.Product            `json:"product"`
	Usage     pricing.UsageQuantities    `json:"usage"`
	Addons    pricing.Addons             `json:"addons"`
	SetupFee  decimal.Decimal            `json:"setupFee"`
	Discounts Discounts                  `json:"discounts"`
	Migration pricing.MigrationSpec      `json:"migration"`
	Extras    []pricing.ExtraServiceLine `json:"extras"`
	Terms     Terms                      `json:"terms"`
}

// NewFormState formulario vacío para el producto indicado.
func NewFormState(p pricing.Product, validityDays int) FormState {
	return FormState{
		Product:   p,
		SetupFee:  decimal.Zero,
		Discounts: Discounts{Monthly: pricing.NoDiscount(), Setup: pricing.NoDiscount(), Annual: pricing.NoDiscount()},
		Migration: pricing.NoMigration(),
		Terms: Terms{
			ValidityDays:       validityDays,
			BillingCycle:       pricing.CycleMonthly,
			SetupInstallments:  1,
			AnnualInstallments: 1,
		},
	}
}

// PricingInput proyecta el formulario a la entrada del motor de precios.
func (f FormState) PricingInput() pricing.Input {
	return pricing.Input{
		Product:            f.Product,
		Usage:              f.Usage,
		Addons:             f.Addons,
		SetupFee:           f.SetupFee,
		MonthlyDiscount:    f.Discounts.Monthly,
		SetupDiscount:      f.Discounts.Setup,
		AnnualDiscount:     f.Discounts.Annual,
		Migration:          f.Migration,
		Extras:             f.Extras,
		BillingCycle:       f.Terms.BillingCycle,
		SetupInstallments:  f.Terms.SetupInstallments,
		AnnualInstallments: f.Terms.AnnualInstallments,
	}
}

// Clone copia profunda (extras y fechas no se comparten).
func (f FormState) Clone() FormState {
	c := f
	if f.Extras != nil {
		c.Extras = make([]pricing.ExtraServiceLine, len(f.Extras))
		copy(c.Extras, f.Extras)
	}
	c.Terms.SetupPaymentDate = cloneTime(f.Terms.SetupPaymentDate)
	c.Terms.MonthlyStartDate = cloneTime(f.Terms.MonthlyStartDate)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// SavedProposal propuesta guardada en el historial.
// MonthlyFinal y SetupFinal se desnormalizan para el listado.
type SavedProposal struct {
	ID           string            `json:"id"`
	Number       string            `json:"number"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	ClientName   string            `json:"clientName"`
	Consultant   ConsultantProfile `json:"consultant"`
	Product      pricing.Product   `json:"erp"`
	Form         FormState         `json:"formState"`
	MonthlyFinal decimal.Decimal   `json:"monthlyFinal"`
	SetupFinal   decimal.Decimal   `json:"setupFinal"`
}

// ValidUntil fecha de validez de la propuesta (desde la creación).
func (p *SavedProposal) ValidUntil() time.Time {
	days := p.Form.Terms.ValidityDays
	if days <= 0 {
		days = 30
	}
	return p.CreatedAt.AddDate(0, 0, days)
}

// Clone copia profunda de la propuesta.
func (p *SavedProposal) Clone() *SavedProposal {
	c := *p
	c.Form = p.Form.Clone()
	return &c
}
