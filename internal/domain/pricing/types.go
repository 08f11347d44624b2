// Package pricing contiene el motor de precios de propuestas comerciales:
// tablas de tarifas, selección de plan, excedentes por paquete cerrado,
// costos de implantación, descuentos y la agregación final.
// Todas las funciones son puras y deterministas; el dinero es decimal.Decimal.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain"
)

// Los importes viajan como números JSON (historial guardado y respuestas HTTP).
// decimal sigue aceptando la forma entre comillas al leer documentos antiguos.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Product línea de producto cotizable.
type Product string

const (
	ProductOfficeADV   Product = "OFFICE_ADV"
	ProductCPJ3CPlus   Product = "CPJ_3C_PLUS"
	ProductCPJCobranca Product = "CPJ_COBRANCA" // inactivo, precio cero
	ProductPromad      Product = "PROMAD"       // reservado, precio cero
)

// Products lista cerrada en orden de presentación.
var Products = []Product{ProductOfficeADV, ProductCPJ3CPlus, ProductCPJCobranca, ProductPromad}

// ParseProduct acepta el tag exacto (sin distinguir mayúsculas).
func ParseProduct(s string) (Product, error) {
	p := Product(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Products {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("producto %q: %w", s, domain.ErrInvalidInput)
}

// Active indica si el producto tiene planes y tarifas definidos.
func (p Product) Active() bool {
	return p == ProductOfficeADV || p == ProductCPJ3CPlus
}

// DisplayName nombre comercial del producto.
func (p Product) DisplayName() string {
	switch p {
	case ProductOfficeADV:
		return "Office ADV"
	case ProductCPJ3CPlus:
		return "CPJ-3C+"
	case ProductCPJCobranca:
		return "CPJ Cobrança"
	case ProductPromad:
		return "PROMAD"
	}
	return string(p)
}

// Tier nivel de capacidad del plan, ordenado.
type Tier int

const (
	TierOne Tier = iota
	TierPro
	TierInfinite
)

var tierNames = [...]string{"ONE", "PRO", "INFINITE"}

func (t Tier) String() string {
	if t < TierOne || t > TierInfinite {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(b)))
	for i, name := range tierNames {
		if s == name {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("tier %q: %w", string(b), domain.ErrInvalidInput)
}

// UsageQuantities volúmenes mensuales solicitados por el cliente.
type UsageQuantities struct {
	Users                 int `json:"users"`
	Publications          int `json:"publications"`
	Intimations           int `json:"intimations"`
	MonitoringCredits     int `json:"monitoringCredits"`
	DistributionProcesses int `json:"distributionProcesses"`
	Protocols             int `json:"protocols"`
	AIDocs                int `json:"aiDocs"`
	NFe                   int `json:"nfe"`
	ConsultingHours       int `json:"consultingHours"`
	FlowHours             int `json:"flowHours"`
}

// MaxQuantity tope de cualquier cantidad mensual del formulario.
const MaxQuantity = 1_000_000_000

// Normalize lleva a cero cualquier cantidad negativa y limita las demás a MaxQuantity.
func (u UsageQuantities) Normalize() UsageQuantities {
	for _, f := range []*int{
		&u.Users, &u.Publications, &u.Intimations, &u.MonitoringCredits,
		&u.DistributionProcesses, &u.Protocols, &u.AIDocs, &u.NFe,
		&u.ConsultingHours, &u.FlowHours,
	} {
		*f = min(max(*f, 0), MaxQuantity)
	}
	return u
}

// Addons módulos opcionales marcados en la propuesta.
type Addons struct {
	FinanceModule         bool `json:"financeModule"`
	APIModule             bool `json:"apiModule"`
	Starter               bool `json:"starter"`
	TrainingReportPowerBI bool `json:"trainingReportPowerBI"`
	TrainingDocGenerator  bool `json:"trainingDocGenerator"`
	TrainingControlling   bool `json:"trainingControlling"`
	TrainingFinance       bool `json:"trainingFinance"`
	BankSlipModule        bool `json:"bankSlipModule"`
}

// DiscountKind tipo de descuento.
type DiscountKind string

const (
	DiscountNone    DiscountKind = "NONE"
	DiscountPercent DiscountKind = "PERCENT"
	DiscountValue   DiscountKind = "VALUE"
)

// DiscountSpec descuento etiquetado; Value se ignora en NONE.
type DiscountSpec struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

func NoDiscount() DiscountSpec { return DiscountSpec{Kind: DiscountNone} }

func PercentDiscount(pct decimal.Decimal) DiscountSpec {
	return DiscountSpec{Kind: DiscountPercent, Value: pct}
}

func ValueDiscount(v decimal.Decimal) DiscountSpec {
	return DiscountSpec{Kind: DiscountValue, Value: v}
}

// ParseDiscountKind vacío = NONE.
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch k := DiscountKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "", DiscountNone:
		return DiscountNone, nil
	case DiscountPercent, DiscountValue:
		return k, nil
	}
	return "", fmt.Errorf("tipo de descuento %q: %w", s, domain.ErrInvalidInput)
}

// MigrationKind tipo de migración de datos.
type MigrationKind string

const (
	MigrationNone           MigrationKind = "NONE"
	MigrationPlanilhaPadrao MigrationKind = "PLANILHA_PADRAO"
	MigrationDiscovery      MigrationKind = "DISCOVERY"
	MigrationPlanilhaCustom MigrationKind = "PLANILHA_PERSONALIZADA"
	MigrationBackupSistema  MigrationKind = "BACKUP_SISTEMA"
)

// MigrationSpec migración etiquetada: Processes solo aplica a DISCOVERY,
// Hours a PLANILHA_PERSONALIZADA y BACKUP_SISTEMA.
type MigrationSpec struct {
	Kind      MigrationKind `json:"kind"`
	Processes int           `json:"processes,omitempty"`
	Hours     int           `json:"hours,omitempty"`
}

func NoMigration() MigrationSpec { return MigrationSpec{Kind: MigrationNone} }

func StandardSheetMigration() MigrationSpec {
	return MigrationSpec{Kind: MigrationPlanilhaPadrao}
}

func DiscoveryMigration(processes int) MigrationSpec {
	return MigrationSpec{Kind: MigrationDiscovery, Processes: max(0, processes)}
}

func CustomSheetMigration(hours int) MigrationSpec {
	return MigrationSpec{Kind: MigrationPlanilhaCustom, Hours: max(0, hours)}
}

func SystemBackupMigration(hours int) MigrationSpec {
	return MigrationSpec{Kind: MigrationBackupSistema, Hours: max(0, hours)}
}

// ParseMigrationKind vacío = NONE.
func ParseMigrationKind(s string) (MigrationKind, error) {
	switch k := MigrationKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "", MigrationNone:
		return MigrationNone, nil
	case MigrationPlanilhaPadrao, MigrationDiscovery, MigrationPlanilhaCustom, MigrationBackupSistema:
		return k, nil
	}
	return "", fmt.Errorf("tipo de migración %q: %w", s, domain.ErrInvalidInput)
}

// BillingKind a qué total suma un servicio extra.
type BillingKind string

const (
	BillingSetup   BillingKind = "SETUP"
	BillingMonthly BillingKind = "MONTHLY"
)

// ParseBillingKind vacío = MONTHLY.
func ParseBillingKind(s string) (BillingKind, error) {
	switch k := BillingKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "", BillingMonthly:
		return BillingMonthly, nil
	case BillingSetup:
		return k, nil
	}
	return "", fmt.Errorf("tipo de cobro %q: %w", s, domain.ErrInvalidInput)
}

// ExtraServiceLine servicio adicional agregado a mano por el consultor.
type ExtraServiceLine struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Billing     BillingKind     `json:"billing"`
}

// Total cantidad × precio unitario; negativos cuentan como cero.
func (l ExtraServiceLine) Total() decimal.Decimal {
	q := decimal.Max(l.Quantity, decimal.Zero)
	p := decimal.Max(l.UnitPrice, decimal.Zero)
	return q.Mul(p)
}

// BillingCycle ciclo de facturación de la mensualidad.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "MONTHLY"
	CycleAnnual  BillingCycle = "ANNUAL"
)

// ParseBillingCycle vacío = MONTHLY.
func ParseBillingCycle(s string) (BillingCycle, error) {
	switch c := BillingCycle(strings.ToUpper(strings.TrimSpace(s))); c {
	case "", CycleMonthly:
		return CycleMonthly, nil
	case CycleAnnual:
		return c, nil
	}
	return "", fmt.Errorf("ciclo de facturación %q: %w", s, domain.ErrInvalidInput)
}
