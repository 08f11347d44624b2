package pricing_test

import (
	"testing"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		name string
		base string
		spec pricing.DiscountSpec
		want string
	}{
		{"sin descuento", "100", pricing.NoDiscount(), "100"},
		{"spec vacío", "100", pricing.DiscountSpec{}, "100"},
		{"porcentaje", "100", pricing.PercentDiscount(d("10")), "90"},
		{"porcentaje fraccionario", "699", pricing.PercentDiscount(d("12.5")), "611.625"},
		{"valor", "100", pricing.ValueDiscount(d("30")), "70"},
		{"valor mayor que la base", "100", pricing.ValueDiscount(d("150")), "0"},
		{"porcentaje mayor que 100", "100", pricing.PercentDiscount(d("200")), "0"},
		{"porcentaje exacto 100", "100", pricing.PercentDiscount(d("100")), "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDec(t, tc.want, pricing.ApplyDiscount(d(tc.base), tc.spec))
		})
	}
}
