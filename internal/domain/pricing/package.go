package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/pkg/money"
)

// PackageAssignment resultado del paquete cerrado asignado a una dimensión.
// TierIndex es -1 cuando no hay excedente o la tabla está vacía.
type PackageAssignment struct {
	Requested    int             `json:"requested"`
	Included     int             `json:"included"`
	Excess       int             `json:"excess"`
	AnnualExcess int             `json:"annualExcess"`
	TierIndex    int             `json:"tierIndex"`
	PackageLimit int             `json:"packageLimit"`
	AnnualLimit  int             `json:"annualLimit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Price        decimal.Decimal `json:"price"`
	Custom       bool            `json:"custom"`
}

// Charged indica si la dimensión genera cobro.
func (a PackageAssignment) Charged() bool {
	return a.TierIndex >= 0 && a.Price.IsPositive()
}

// UnitLabel descripción del paquete para la vista previa.
func (a PackageAssignment) UnitLabel() string {
	if a.Custom {
		return fmt.Sprintf("Pacote Personalizado %s/mês", money.FormatQuantity(a.PackageLimit))
	}
	return fmt.Sprintf("Pacote %s/mês (%s/ano)",
		money.FormatQuantity(a.PackageLimit), money.FormatQuantity(a.AnnualLimit))
}

// AssignPackage aplica la regla de paquete cerrado:
//
//  1. excess = max(0, requested - included); sin excedente no hay cobro.
//  2. annualExcess = excess × 12 (saturado en math.MaxInt).
//  3. primera franja con AnnualLimit >= annualExcess, comparando
//     excess <= AnnualLimit/12 para no desbordar.
//  4. franja personalizada: excess × UnitPrice, nunca por debajo del
//     paquete finito más caro de la tabla.
//  5. franja finita: se cobra el paquete completo, MonthlyLimit × UnitPrice.
func AssignPackage(table TierTable, requested, included int) PackageAssignment {
	a := PackageAssignment{
		Requested: max(0, requested),
		Included:  max(0, included),
		TierIndex: -1,
		Price:     decimal.Zero,
	}
	a.Excess = max(0, a.Requested-a.Included)
	a.AnnualExcess = annualOf(a.Excess)
	if a.Excess == 0 || len(table) == 0 {
		return a
	}

	idx := len(table) - 1
	for i, t := range table {
		if t.Custom() || a.Excess <= t.AnnualLimit/12 {
			idx = i
			break
		}
	}
	t := table[idx]
	a.TierIndex = idx
	a.UnitPrice = t.UnitPrice

	if t.Custom() {
		a.Custom = true
		a.PackageLimit = a.Excess
		a.AnnualLimit = a.AnnualExcess
		a.Price = decimal.Max(
			t.UnitPrice.Mul(decimal.NewFromInt(int64(a.Excess))),
			table.maxFinitePackagePrice(),
		)
		return a
	}

	a.PackageLimit = t.MonthlyLimit
	a.AnnualLimit = t.AnnualLimit
	a.Price = t.PackagePrice()
	return a
}

func annualOf(monthly int) int {
	if monthly > math.MaxInt/12 {
		return math.MaxInt
	}
	return monthly * 12
}

func (tt TierTable) maxFinitePackagePrice() decimal.Decimal {
	m := decimal.Zero
	for _, t := range tt {
		if !t.Custom() {
			m = decimal.Max(m, t.PackagePrice())
		}
	}
	return m
}
