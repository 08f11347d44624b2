package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ApplyDiscount aplica el descuento sobre la base; el resultado nunca es negativo.
func ApplyDiscount(base decimal.Decimal, spec DiscountSpec) decimal.Decimal {
	switch spec.Kind {
	case DiscountPercent:
		factor := decimal.NewFromInt(1).Sub(spec.Value.Div(hundred))
		return decimal.Max(decimal.Zero, base.Mul(factor))
	case DiscountValue:
		return decimal.Max(decimal.Zero, base.Sub(spec.Value))
	case DiscountNone, "":
		return base
	}
	return base
}
