package pricing

import "github.com/shopspring/decimal"

// InclusionSet cantidades incluidas en el precio base del plan.
// Los campos extra solo se completan para CPJ-3C+.
type InclusionSet struct {
	Users           int  `json:"users"`
	Publications    int  `json:"publications"`
	Monitoring      int  `json:"monitoring"`
	Docs            int  `json:"docs"`
	FinanceIncluded bool `json:"financeIncluded"`

	NFe                int    `json:"nfe,omitempty"`
	StorageGB          int    `json:"storageGb,omitempty"`
	AgentTokens        int    `json:"agentTokens,omitempty"`
	BankPlan           string `json:"bankPlan,omitempty"`
	Boletos            int    `json:"boletos,omitempty"`
	FinanceType        string `json:"financeType,omitempty"`
	UnlimitedProcesses bool   `json:"unlimitedProcesses,omitempty"`
}

// PlanDefinition precio base e inclusiones de un par (producto, tier).
type PlanDefinition struct {
	Product    Product         `json:"product"`
	Tier       Tier            `json:"tier"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	Inclusions InclusionSet    `json:"inclusions"`
}

// Name etiqueta comercial del plan, p. ej. "Pacote Office PRO".
func (d PlanDefinition) Name() string {
	return PlanName(d.Product, d.Tier)
}

// PlanName etiqueta del paquete para un producto y tier.
func PlanName(p Product, t Tier) string {
	switch p {
	case ProductOfficeADV:
		return "Pacote Office " + t.String()
	case ProductCPJ3CPlus:
		return "Pacote CPJ-3C+ " + t.String()
	}
	return "Pacote " + p.DisplayName()
}

var plans = map[Product][3]PlanDefinition{
	ProductOfficeADV: {
		{Product: ProductOfficeADV, Tier: TierOne, BasePrice: dec("399"),
			Inclusions: InclusionSet{Users: 5, Publications: 3, Monitoring: 500, Docs: 5}},
		{Product: ProductOfficeADV, Tier: TierPro, BasePrice: dec("699"),
			Inclusions: InclusionSet{Users: 10, Publications: 5, Monitoring: 1000, Docs: 10, FinanceIncluded: true}},
		{Product: ProductOfficeADV, Tier: TierInfinite, BasePrice: dec("1190"),
			Inclusions: InclusionSet{Users: 20, Publications: 20, Monitoring: 1500, Docs: 10, FinanceIncluded: true}},
	},
	ProductCPJ3CPlus: {
		{Product: ProductCPJ3CPlus, Tier: TierOne, BasePrice: dec("1499"),
			Inclusions: InclusionSet{
				Users: 10, Publications: 3, Monitoring: 1500, Docs: 20, FinanceIncluded: true,
				NFe: 1, StorageGB: 80, AgentTokens: 10000, BankPlan: "Preâmbulo Bank Essencial",
				Boletos: 50, FinanceType: "Padrão", UnlimitedProcesses: true,
			}},
		{Product: ProductCPJ3CPlus, Tier: TierPro, BasePrice: dec("2999"),
			Inclusions: InclusionSet{
				Users: 25, Publications: 5, Monitoring: 3000, Docs: 50, FinanceIncluded: true,
				NFe: 2, StorageGB: 200, AgentTokens: 20000, BankPlan: "Preâmbulo Bank Growth",
				Boletos: 100, FinanceType: "Avançado", UnlimitedProcesses: true,
			}},
		{Product: ProductCPJ3CPlus, Tier: TierInfinite, BasePrice: dec("4499"),
			Inclusions: InclusionSet{
				Users: 40, Publications: 10, Monitoring: 5000, Docs: 80, FinanceIncluded: true,
				NFe: 3, StorageGB: 500, AgentTokens: 50000, BankPlan: "Preâmbulo Bank Growth",
				Boletos: 150, FinanceType: "Avançado", UnlimitedProcesses: true,
			}},
	},
}

// SelectTier recomienda el tier según la cantidad de usuarios.
// Productos sin tabla propia usan los cortes de Office.
func SelectTier(p Product, users int) Tier {
	one, pro := 5, 10
	if p == ProductCPJ3CPlus {
		one, pro = 10, 25
	}
	switch {
	case users <= one:
		return TierOne
	case users <= pro:
		return TierPro
	default:
		return TierInfinite
	}
}

// GetPlan devuelve la definición del plan; ok=false para productos inactivos.
func GetPlan(p Product, t Tier) (PlanDefinition, bool) {
	defs, ok := plans[p]
	if !ok || t < TierOne || t > TierInfinite {
		return PlanDefinition{}, false
	}
	return defs[t], true
}

// GetInclusions devuelve una copia de las inclusiones o nil si el producto no tiene plan.
func GetInclusions(p Product, t Tier) *InclusionSet {
	def, ok := GetPlan(p, t)
	if !ok {
		return nil
	}
	inc := def.Inclusions
	return &inc
}

// GetBasePrice precio mensual base; cero para productos inactivos.
func GetBasePrice(p Product, t Tier) decimal.Decimal {
	def, ok := GetPlan(p, t)
	if !ok {
		return decimal.Zero
	}
	return def.BasePrice
}

// Plans lista los planes del producto en orden de tier (vacío si inactivo).
func Plans(p Product) []PlanDefinition {
	defs, ok := plans[p]
	if !ok {
		return nil
	}
	out := make([]PlanDefinition, len(defs))
	copy(out, defs[:])
	return out
}
