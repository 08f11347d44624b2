// Package money formatea importes en reais para documentos y etiquetas.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devuelve el importe como "R$ 1.234,56" (redondeado a centavos).
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatNumber(d)
}

// FormatNumber devuelve el importe con separadores pt-BR y dos decimales, sin símbolo.
func FormatNumber(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(brPrinter.Sprintf("%d", whole.IntPart()))
	fmt.Fprintf(&b, ",%02d", cents)
	return b.String()
}

// FormatQuantity formatea cantidades enteras con separador de miles pt-BR ("12.000").
func FormatQuantity(n int) string {
	return brPrinter.Sprintf("%d", n)
}
