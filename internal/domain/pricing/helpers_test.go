package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDec compara importes por valor (no por representación interna).
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, got.Equal(d(want)), "esperado %s, obtenido %s %v", want, got.String(), msgAndArgs)
}
