package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

func date(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildPaymentSchedule_MismoMesSumaPrimeraFactura(t *testing.T) {
	s := pricing.BuildPaymentSchedule(d("2000"), d("699"), date(2026, 3, 5), date(2026, 3, 20))

	assert.True(t, s.SamePeriod)
	assert.True(t, s.FirstPeriodIncludesSetup)
	assertDec(t, "2699", s.FirstPeriodAmount)
}

func TestBuildPaymentSchedule_MesesDistintos(t *testing.T) {
	s := pricing.BuildPaymentSchedule(d("2000"), d("699"), date(2026, 3, 5), date(2026, 4, 5))

	assert.False(t, s.SamePeriod)
	assert.False(t, s.FirstPeriodIncludesSetup)
	assertDec(t, "699", s.FirstPeriodAmount)
}

func TestBuildPaymentSchedule_MismoMesOtroAnio(t *testing.T) {
	s := pricing.BuildPaymentSchedule(d("2000"), d("699"), date(2025, 3, 5), date(2026, 3, 5))
	assert.False(t, s.SamePeriod)
}

func TestBuildPaymentSchedule_SoloSetup(t *testing.T) {
	s := pricing.BuildPaymentSchedule(d("2000"), d("0"), date(2026, 3, 5), nil)

	assert.True(t, s.HasSetup)
	assert.False(t, s.HasMonthly)
	assert.True(t, s.FirstPeriodIncludesSetup)
	assertDec(t, "2000", s.FirstPeriodAmount)
}

func TestBuildPaymentSchedule_SinFechas(t *testing.T) {
	s := pricing.BuildPaymentSchedule(d("2000"), d("699"), nil, nil)
	assert.False(t, s.SamePeriod)
	assertDec(t, "0", s.FirstPeriodAmount)
}
