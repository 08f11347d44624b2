package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// Quantity entero no negativo tolerante: números, textos numéricos, decimales
// (se trunca), nulos o basura. Lo inválido o negativo vale 0.
type Quantity int

// UnmarshalJSON nunca falla; la entrada del formulario se corrige en lugar de rechazarse.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	*q = Quantity(ParseQuantity(unquote(b)))
	return nil
}

// Int valor como int.
func (q Quantity) Int() int { return int(q) }

// ParseQuantity convierte texto a cantidad entera no negativa, limitada a
// pricing.MaxQuantity.
func ParseQuantity(s string) int {
	d, ok := parseNumber(s)
	if !ok || d.IsNegative() {
		return 0
	}
	if d.GreaterThan(maxQuantity) {
		return pricing.MaxQuantity
	}
	return int(d.IntPart())
}

var maxQuantity = decimal.NewFromInt(pricing.MaxQuantity)

// Amount importe no negativo tolerante. Acepta "1234.56", 1234.56 y "1.234,56".
type Amount struct {
	decimal.Decimal
}

// NewAmount construye un Amount (negativos a 0).
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: decimal.Max(d, decimal.Zero)}
}

// UnmarshalJSON nunca falla; lo inválido o negativo vale 0.
func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Decimal = ParseAmount(unquote(b))
	return nil
}

// MarshalJSON delega en decimal (número JSON).
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}

// ParseAmount convierte texto a importe no negativo.
func ParseAmount(s string) decimal.Decimal {
	d, ok := parseNumber(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func unquote(b []byte) string {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return s
	}
	return string(b)
}

func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return decimal.Zero, false
	}
	// Formato pt-BR: punto de miles, coma decimal.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
