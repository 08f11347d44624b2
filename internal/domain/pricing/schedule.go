package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSchedule primera factura según las fechas de setup y de inicio de la mensualidad.
type PaymentSchedule struct {
	SetupAmount              decimal.Decimal `json:"setupAmount"`
	SetupDate                *time.Time      `json:"setupDate,omitempty"`
	MonthlyAmount            decimal.Decimal `json:"monthlyAmount"`
	MonthlyStartDate         *time.Time      `json:"monthlyStartDate,omitempty"`
	FirstPeriodAmount        decimal.Decimal `json:"firstPeriodAmount"`
	FirstPeriodIncludesSetup bool            `json:"firstPeriodIncludesSetup"`
	HasSetup                 bool            `json:"hasSetup"`
	HasMonthly               bool            `json:"hasMonthly"`
	SamePeriod               bool            `json:"samePeriod"`
}

// BuildPaymentSchedule recibe los totales ya descontados. Si setup y primera
// mensualidad caen en el mismo mes calendario se suman en la primera factura.
func BuildPaymentSchedule(setupFinal, monthlyFinal decimal.Decimal, setupDate, monthlyDate *time.Time) PaymentSchedule {
	s := PaymentSchedule{
		SetupAmount:       setupFinal,
		SetupDate:         setupDate,
		MonthlyAmount:     monthlyFinal,
		MonthlyStartDate:  monthlyDate,
		FirstPeriodAmount: decimal.Zero,
		HasSetup:          setupFinal.IsPositive(),
		HasMonthly:        monthlyFinal.IsPositive(),
	}

	if s.HasSetup && s.HasMonthly && setupDate != nil && monthlyDate != nil {
		sy, sm, _ := setupDate.Date()
		my, mm, _ := monthlyDate.Date()
		s.SamePeriod = sy == my && sm == mm
	}

	switch {
	case s.SamePeriod:
		s.FirstPeriodAmount = setupFinal.Add(monthlyFinal)
		s.FirstPeriodIncludesSetup = true
	case s.HasMonthly && monthlyDate != nil:
		s.FirstPeriodAmount = monthlyFinal
	case s.HasSetup && setupDate != nil:
		s.FirstPeriodAmount = setupFinal
		s.FirstPeriodIncludesSetup = true
	}
	return s
}
