package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// DateLayout formato de fechas de pago en las peticiones.
const DateLayout = "2006-01-02"

// ClientDTO datos del cliente.
type ClientDTO struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// ToEntity recorta espacios de cada campo.
func (c ClientDTO) ToEntity() entity.ClientInfo {
	return entity.ClientInfo{
		Name:     strings.TrimSpace(c.Name),
		Document: strings.TrimSpace(c.Document),
		Contact:  strings.TrimSpace(c.Contact),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		City:     strings.TrimSpace(c.City),
	}
}

// ProductRequest cuerpo de PUT /api/draft/product.
type ProductRequest struct {
	Product string `json:"product"`
}

// UsageDTO cantidades mensuales solicitadas.
type UsageDTO struct {
	Users                 Quantity `json:"users"`
	Publications          Quantity `json:"publications"`
	Intimations           Quantity `json:"intimations"`
	MonitoringCredits     Quantity `json:"monitoringCredits"`
	DistributionProcesses Quantity `json:"distributionProcesses"`
	Protocols             Quantity `json:"protocols"`
	AIDocs                Quantity `json:"aiDocs"`
	NFe                   Quantity `json:"nfe"`
	ConsultingHours       Quantity `json:"consultingHours"`
	FlowHours             Quantity `json:"flowHours"`
}

func (u UsageDTO) ToDomain() pricing.UsageQuantities {
	return pricing.UsageQuantities{
		Users:                 u.Users.Int(),
		Publications:          u.Publications.Int(),
		Intimations:           u.Intimations.Int(),
		MonitoringCredits:     u.MonitoringCredits.Int(),
		DistributionProcesses: u.DistributionProcesses.Int(),
		Protocols:             u.Protocols.Int(),
		AIDocs:                u.AIDocs.Int(),
		NFe:                   u.NFe.Int(),
		ConsultingHours:       u.ConsultingHours.Int(),
		FlowHours:             u.FlowHours.Int(),
	}
}

// DiscountDTO descuento: type NONE | PERCENT | VALUE.
type DiscountDTO struct {
	Type  string `json:"type"`
	Value Amount `json:"value"`
}

func (d DiscountDTO) ToDomain() (pricing.DiscountSpec, error) {
	kind, err := pricing.ParseDiscountKind(d.Type)
	if err != nil {
		return pricing.DiscountSpec{}, err
	}
	switch kind {
	case pricing.DiscountPercent:
		return pricing.PercentDiscount(d.Value.Decimal), nil
	case pricing.DiscountValue:
		return pricing.ValueDiscount(d.Value.Decimal), nil
	default:
		return pricing.NoDiscount(), nil
	}
}

// DiscountsDTO cuerpo de PUT /api/draft/discounts.
type DiscountsDTO struct {
	SetupFee Amount      `json:"setupFee"`
	Monthly  DiscountDTO `json:"monthly"`
	Setup    DiscountDTO `json:"setup"`
	Annual   DiscountDTO `json:"annual"`
}

func (d DiscountsDTO) ToDomain() (entity.Discounts, error) {
	var out entity.Discounts
	var err error
	if out.Monthly, err = d.Monthly.ToDomain(); err != nil {
		return out, fmt.Errorf("monthly: %w", err)
	}
	if out.Setup, err = d.Setup.ToDomain(); err != nil {
		return out, fmt.Errorf("setup: %w", err)
	}
	if out.Annual, err = d.Annual.ToDomain(); err != nil {
		return out, fmt.Errorf("annual: %w", err)
	}
	return out, nil
}

// MigrationDTO tipo de migración de datos.
type MigrationDTO struct {
	Type      string   `json:"type"`
	Processes Quantity `json:"processes"`
	Hours     Quantity `json:"hours"`
}

func (m MigrationDTO) ToDomain() (pricing.MigrationSpec, error) {
	kind, err := pricing.ParseMigrationKind(m.Type)
	if err != nil {
		return pricing.MigrationSpec{}, err
	}
	switch kind {
	case pricing.MigrationPlanilhaPadrao:
		return pricing.StandardSheetMigration(), nil
	case pricing.MigrationDiscovery:
		return pricing.DiscoveryMigration(m.Processes.Int()), nil
	case pricing.MigrationPlanilhaCustom:
		return pricing.CustomSheetMigration(m.Hours.Int()), nil
	case pricing.MigrationBackupSistema:
		return pricing.SystemBackupMigration(m.Hours.Int()), nil
	default:
		return pricing.NoMigration(), nil
	}
}

// ExtraServiceDTO línea libre de servicio adicional.
type ExtraServiceDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    Amount `json:"quantity"`
	UnitPrice   Amount `json:"unitPrice"`
	Billing     string `json:"billing"`
}

func (e ExtraServiceDTO) ToDomain() (pricing.ExtraServiceLine, error) {
	billing, err := pricing.ParseBillingKind(e.Billing)
	if err != nil {
		return pricing.ExtraServiceLine{}, err
	}
	return pricing.ExtraServiceLine{
		ID:          strings.TrimSpace(e.ID),
		Description: strings.TrimSpace(e.Description),
		Quantity:    e.Quantity.Decimal,
		UnitPrice:   e.UnitPrice.Decimal,
		Billing:     billing,
	}, nil
}

// ExtrasToDomain convierte la lista completa; falla en la primera línea inválida.
func ExtrasToDomain(in []ExtraServiceDTO) ([]pricing.ExtraServiceLine, error) {
	out := make([]pricing.ExtraServiceLine, 0, len(in))
	for i, e := range in {
		line, err := e.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("extra %d: %w", i, err)
		}
		out = append(out, line)
	}
	return out, nil
}

// TermsDTO condiciones comerciales. Fechas en formato YYYY-MM-DD.
type TermsDTO struct {
	ValidityDays       Quantity `json:"validityDays"`
	BillingCycle       string   `json:"billingCycle"`
	SetupInstallments  Quantity `json:"setupInstallments"`
	AnnualInstallments Quantity `json:"annualInstallments"`
	SetupPaymentDate   string   `json:"setupPaymentDate"`
	MonthlyStartDate   string   `json:"monthlyStartDate"`
	PaymentConditions  string   `json:"paymentConditions"`
	Observations       string   `json:"observations"`
}

// ToDomain aplica defaultValidity cuando no se indica validez.
func (t TermsDTO) ToDomain(defaultValidity int) (entity.Terms, error) {
	cycle, err := pricing.ParseBillingCycle(t.BillingCycle)
	if err != nil {
		return entity.Terms{}, err
	}
	setupDate, err := parseDate(t.SetupPaymentDate)
	if err != nil {
		return entity.Terms{}, fmt.Errorf("setupPaymentDate: %w", err)
	}
	monthlyDate, err := parseDate(t.MonthlyStartDate)
	if err != nil {
		return entity.Terms{}, fmt.Errorf("monthlyStartDate: %w", err)
	}
	validity := t.ValidityDays.Int()
	if validity <= 0 {
		validity = defaultValidity
	}
	return entity.Terms{
		ValidityDays:       validity,
		BillingCycle:       cycle,
		SetupInstallments:  max(1, t.SetupInstallments.Int()),
		AnnualInstallments: max(1, t.AnnualInstallments.Int()),
		SetupPaymentDate:   setupDate,
		MonthlyStartDate:   monthlyDate,
		PaymentConditions:  strings.TrimSpace(t.PaymentConditions),
		Observations:       strings.TrimSpace(t.Observations),
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return &t, nil
}

// FormRequest formulario completo (POST /api/quotes).
type FormRequest struct {
	Client    ClientDTO         `json:"client"`
	Product   string            `json:"product"`
	Usage     UsageDTO          `json:"usage"`
	Addons    pricing.Addons    `json:"addons"`
	Discounts DiscountsDTO      `json:"discounts"`
	Migration MigrationDTO      `json:"migration"`
	Extras    []ExtraServiceDTO `json:"extras"`
	Terms     TermsDTO          `json:"terms"`
}

// ToFormState valida los enumerados y arma el estado del formulario.
func (r FormRequest) ToFormState(defaultValidity int) (entity.FormState, error) {
	product, err := pricing.ParseProduct(r.Product)
	if err != nil {
		return entity.FormState{}, err
	}
	f := entity.NewFormState(product, defaultValidity)
	f.Client = r.Client.ToEntity()
	f.Usage = r.Usage.ToDomain()
	f.Addons = r.Addons
	f.SetupFee = r.Discounts.SetupFee.Decimal
	if f.Discounts, err = r.Discounts.ToDomain(); err != nil {
		return entity.FormState{}, err
	}
	if f.Migration, err = r.Migration.ToDomain(); err != nil {
		return entity.FormState{}, err
	}
	if f.Extras, err = ExtrasToDomain(r.Extras); err != nil {
		return entity.FormState{}, err
	}
	if f.Terms, err = r.Terms.ToDomain(defaultValidity); err != nil {
		return entity.FormState{}, err
	}
	return f, nil
}

// QuoteResponse formulario más su proyección de precios.
type QuoteResponse struct {
	Form       entity.FormState        `json:"form"`
	Pricing    pricing.PricingResult   `json:"pricing"`
	Schedule   pricing.PaymentSchedule `json:"schedule"`
	ValidUntil string                  `json:"validUntil"`
}

// DraftResponse estado de la sesión de edición.
type DraftResponse struct {
	QuoteResponse
	EditingID string `json:"editingId,omitempty"`
	Number    string `json:"number,omitempty"`
}

// ProposalSummaryResponse fila del historial.
type ProposalSummaryResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	ClientName   string          `json:"clientName"`
	Product      pricing.Product `json:"erp"`
	ProductName  string          `json:"productName"`
	Consultant   string          `json:"consultant"`
	MonthlyFinal decimal.Decimal `json:"monthlyFinal"`
	SetupFinal   decimal.Decimal `json:"setupFinal"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProposalResponse propuesta guardada con precios recalculados.
type ProposalResponse struct {
	ProposalSummaryResponse
	ConsultantProfile entity.ConsultantProfile `json:"consultantProfile"`
	QuoteResponse
}
