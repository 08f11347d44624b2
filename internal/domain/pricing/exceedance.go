package pricing

import "github.com/shopspring/decimal"

// FlatCharge cobro lineal cantidad × precio unitario.
type FlatCharge struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Price     decimal.Decimal `json:"price"`
}

func flat(qty int, unit decimal.Decimal) FlatCharge {
	qty = max(0, qty)
	if !unit.IsPositive() {
		return FlatCharge{Quantity: qty, UnitPrice: decimal.Zero, Price: decimal.Zero}
	}
	return FlatCharge{Quantity: qty, UnitPrice: unit, Price: unit.Mul(decimal.NewFromInt(int64(qty)))}
}

// Charged indica si la línea genera cobro.
func (f FlatCharge) Charged() bool { return f.Price.IsPositive() }

// ExceedanceBreakdown cobros mensuales por encima del plan, por dimensión.
type ExceedanceBreakdown struct {
	Users         FlatCharge        `json:"users"`
	Publications  FlatCharge        `json:"publications"`
	Intimations   FlatCharge        `json:"intimations"`
	NFe           FlatCharge        `json:"nfe"`
	Consulting    FlatCharge        `json:"consulting"`
	Monitoring    PackageAssignment `json:"monitoring"`
	Distribution  PackageAssignment `json:"distribution"`
	Protocols     PackageAssignment `json:"protocols"`
	AIDocs        PackageAssignment `json:"aiDocs"`
	FinanceModule decimal.Decimal   `json:"financeModule"`
	Total         decimal.Decimal   `json:"total"`
}

// CalculateExceedances calcula los excedentes mensuales del producto contra las
// inclusiones del tier. inclusions nil equivale a no tener nada incluido.
func CalculateExceedances(p Product, usage UsageQuantities, inclusions *InclusionSet, addons Addons) ExceedanceBreakdown {
	usage = usage.Normalize()
	card := RateCardFor(p)

	var inc InclusionSet
	if inclusions != nil {
		inc = *inclusions
	}

	b := ExceedanceBreakdown{
		Users:        flat(usage.Users-inc.Users, card.UserOverage),
		Publications: flat(usage.Publications-inc.Publications, card.PublicationOverage),
		// intimaciones y NFe no tienen franquicia: se cobra todo lo solicitado
		Intimations: flat(usage.Intimations, card.Intimation),
		NFe:         flat(usage.NFe, card.NFe),
		Consulting:  flat(usage.ConsultingHours, card.ConsultingMonthly),

		Monitoring:   AssignPackage(card.Monitoring, usage.MonitoringCredits, inc.Monitoring),
		Distribution: AssignPackage(card.Distribution, usage.DistributionProcesses, 0),
		Protocols:    AssignPackage(card.Protocols, usage.Protocols, 0),
		AIDocs:       AssignPackage(card.AIDocs, usage.AIDocs, inc.Docs),

		FinanceModule: decimal.Zero,
	}
	if addons.FinanceModule && !inc.FinanceIncluded {
		b.FinanceModule = card.FinanceModule
	}

	b.Total = decimal.Sum(decimal.Zero,
		b.Users.Price, b.Publications.Price, b.Intimations.Price, b.NFe.Price, b.Consulting.Price,
		b.Monitoring.Price, b.Distribution.Price, b.Protocols.Price, b.AIDocs.Price,
		b.FinanceModule,
	)
	return b
}
