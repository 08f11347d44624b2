package pricing

import "github.com/shopspring/decimal"

// PackageTier franja de paquete cerrado. AnnualLimit == 0 marca la franja
// terminal personalizada (sin límite anual finito).
type PackageTier struct {
	MonthlyLimit int             `json:"monthlyLimit"`
	AnnualLimit  int             `json:"annualLimit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// Custom indica si es la franja personalizada.
func (t PackageTier) Custom() bool { return t.AnnualLimit == 0 }

// PackagePrice precio mensual del paquete completo.
func (t PackageTier) PackagePrice() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.MonthlyLimit)))
}

// TierTable franjas ascendentes por límite anual; la última es la personalizada.
type TierTable []PackageTier

// RateCard tarifas de un producto. Un precio cero desactiva la dimensión.
type RateCard struct {
	UserOverage        decimal.Decimal `json:"userOverage"`
	PublicationOverage decimal.Decimal `json:"publicationOverage"`
	Intimation         decimal.Decimal `json:"intimation"`
	NFe                decimal.Decimal `json:"nfe"`
	FinanceModule      decimal.Decimal `json:"financeModule"`
	ConsultingMonthly  decimal.Decimal `json:"consultingMonthly"` // CPJ: consultoría recurrente
	ConsultingSetup    decimal.Decimal `json:"consultingSetup"`   // Office: consultoría de implantación
	FlowSetup          decimal.Decimal `json:"flowSetup"`         // CPJ: configuración de flujo completo
	Trainings          bool            `json:"trainings"`         // entrenamientos y boleto (solo Office)

	Monitoring   TierTable `json:"monitoring"`
	Distribution TierTable `json:"distribution"`
	Protocols    TierTable `json:"protocols"`
	AIDocs       TierTable `json:"aiDocs"`
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tier(limit, annual int, price string) PackageTier {
	return PackageTier{MonthlyLimit: limit, AnnualLimit: annual, UnitPrice: dec(price)}
}

func customTier(price string) PackageTier {
	return PackageTier{UnitPrice: dec(price)}
}

// Precios fijos (implantación y módulos).
var (
	PriceStarter               = dec("899")
	PriceConsultingHour        = dec("225")
	PriceTrainingReportPowerBI = dec("1500")
	PriceTrainingDocGenerator  = dec("1200")
	PriceTrainingControlling   = dec("1800")
	PriceTrainingFinance       = dec("1500")
	PriceBankSlipModule        = dec("800")
	PriceAPIModule             = decimal.Zero

	PriceDiscoveryProcess  = dec("0.25")
	DiscoveryFreeProcesses = 2000
)

// ── Office ADV ─────────────────────────────────────────────────────────────────

var officeMonitoringTiers = TierTable{
	tier(500, 6000, "0.30"),
	tier(1000, 12000, "0.20"),
	tier(2000, 24000, "0.15"),
	customTier("0.12"),
}

var officeDistributionTiers = TierTable{
	tier(20, 240, "25"),
	tier(50, 600, "20"),
	tier(100, 1200, "15"),
	customTier("12"),
}

var officeProtocolTiers = TierTable{
	tier(125, 1500, "2.80"),
	tier(250, 3000, "2.50"),
	tier(417, 5000, "2.20"),
	tier(833, 10000, "2.00"),
	customTier("1.80"),
}

// ── CPJ-3C+ ────────────────────────────────────────────────────────────────────

var cpjMonitoringTiers = TierTable{
	tier(500, 6000, "0.30"),
	tier(1000, 12000, "0.20"),
	tier(2000, 24000, "0.15"),
	customTier("0.12"),
}

var cpjDistributionTiers = TierTable{
	tier(20, 240, "25"),
	tier(50, 600, "20"),
	tier(100, 1200, "15"),
	customTier("12"),
}

var cpjProtocolTiers = TierTable{
	tier(250, 3000, "2.50"),
	tier(417, 5000, "2.20"),
	tier(833, 10000, "2.00"),
	customTier("1.80"),
}

// Documentos IA: tabla compartida por ambos productos.
var aiDocsTiers = TierTable{
	tier(10, 120, "7.50"),
	tier(50, 600, "6.50"),
	tier(100, 1200, "5.50"),
	customTier("5.00"),
}

var rateCards = map[Product]RateCard{
	ProductOfficeADV: {
		UserOverage:        dec("80"),
		PublicationOverage: dec("30"),
		Intimation:         dec("60"),
		FinanceModule:      dec("299"),
		ConsultingSetup:    PriceConsultingHour,
		Trainings:          true,
		Monitoring:         officeMonitoringTiers,
		Distribution:       officeDistributionTiers,
		Protocols:          officeProtocolTiers,
		AIDocs:             aiDocsTiers,
	},
	ProductCPJ3CPlus: {
		UserOverage:        dec("106"),
		PublicationOverage: dec("80"),
		NFe:                dec("99"),
		ConsultingMonthly:  PriceConsultingHour,
		FlowSetup:          PriceConsultingHour,
		Monitoring:         cpjMonitoringTiers,
		Distribution:       cpjDistributionTiers,
		Protocols:          cpjProtocolTiers,
		AIDocs:             aiDocsTiers,
	},
}

// RateCardFor devuelve las tarifas del producto; productos inactivos reciben
// una tarjeta vacía (todo a precio cero).
func RateCardFor(p Product) RateCard {
	return rateCards[p]
}
