package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propostas-api/internal/application/analytics"
	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// historyRepo fake en memoria de ProposalRepository (solo List importa aquí).
type historyRepo struct {
	list []*entity.SavedProposal
}

func (r *historyRepo) Save(context.Context, *entity.SavedProposal) error { return nil }
func (r *historyRepo) GetByID(context.Context, string) (*entity.SavedProposal, error) {
	return nil, nil
}
func (r *historyRepo) List(context.Context) ([]*entity.SavedProposal, error) { return r.list, nil }
func (r *historyRepo) Delete(context.Context, string) error { return nil }

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func saved(id string, p pricing.Product, created time.Time, monthly, setup string) *entity.SavedProposal {
	return &entity.SavedProposal{
		ID: id, Product: p, CreatedAt: created,
		MonthlyFinal: decimal.RequireFromString(monthly),
		SetupFinal:   decimal.RequireFromString(setup),
	}
}

func newUseCase() *analytics.DashboardUseCase {
	repo := &historyRepo{list: []*entity.SavedProposal{
		saved("hoy", pricing.ProductOfficeADV, now.Add(-2*time.Hour), "1000", "500"),
		saved("hace3", pricing.ProductCPJ3CPlus, now.AddDate(0, 0, -3), "3000", "0"),
		saved("hace20", pricing.ProductOfficeADV, now.AddDate(0, 0, -20), "500", "100"),
		saved("hace60", pricing.ProductOfficeADV, now.AddDate(0, 0, -60), "9999", "9999"),
	}}
	return analytics.NewDashboardUseCase(repo).WithClock(func() time.Time { return now })
}

func TestGetPerformance_Periodos(t *testing.T) {
	tests := []struct {
		period  string
		count   int
		monthly string
	}{
		{"today", 1, "1000"},
		{"week", 2, "4000"},
		{"month", 3, "4500"},
		{"", 3, "4500"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			out, err := newUseCase().GetPerformance(context.Background(), dto.PerformanceFilter{Period: tt.period})
			require.NoError(t, err)
			assert.Equal(t, tt.count, out.TotalProposals)
			assert.True(t, out.MonthlyTotal.Equal(decimal.RequireFromString(tt.monthly)), "monthly = %s", out.MonthlyTotal)
		})
	}
}

func TestGetPerformance_TotalesYDesglose(t *testing.T) {
	out, err := newUseCase().GetPerformance(context.Background(), dto.PerformanceFilter{Period: "month"})
	require.NoError(t, err)

	assert.Equal(t, "Último mês", out.PeriodLabel)
	assert.True(t, out.AnnualTotal.Equal(decimal.NewFromInt(54000)))
	assert.True(t, out.AverageMonthly.Equal(decimal.NewFromInt(1500)))
	assert.True(t, out.SetupTotal.Equal(decimal.NewFromInt(600)))

	require.Len(t, out.ByProduct, 2)
	assert.Equal(t, pricing.ProductOfficeADV, out.ByProduct[0].Product)
	assert.Equal(t, 2, out.ByProduct[0].Count)
	assert.True(t, out.ByProduct[0].MonthlyTotal.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "CPJ-3C+", out.ByProduct[1].ProductName)
}

func TestGetPerformance_Personalizado(t *testing.T) {
	out, err := newUseCase().GetPerformance(context.Background(), dto.PerformanceFilter{
		Period: "custom", Start: "2026-02-01", End: "2026-02-28",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalProposals, "solo la de hace 20 días")
	assert.Equal(t, "01/02/2026 - 28/02/2026", out.PeriodLabel)

	all, err := newUseCase().GetPerformance(context.Background(), dto.PerformanceFilter{Period: "custom"})
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalProposals)
	assert.Equal(t, "Período customizado", all.PeriodLabel)
}

func TestGetPerformance_SinPropuestas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&historyRepo{}).WithClock(func() time.Time { return now })
	out, err := uc.GetPerformance(context.Background(), dto.PerformanceFilter{Period: "week"})
	require.NoError(t, err)
	assert.Zero(t, out.TotalProposals)
	assert.True(t, out.AverageMonthly.IsZero())
	assert.Empty(t, out.ByProduct)
}

func TestGetPerformance_FiltroInvalido(t *testing.T) {
	uc := newUseCase()
	for _, f := range []dto.PerformanceFilter{
		{Period: "year"},
		{Period: "custom", Start: "10/03/2026"},
		{Period: "custom", Start: "2026-03-10", End: "2026-03-01"},
	} {
		_, err := uc.GetPerformance(context.Background(), f)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "filtro %+v", f)
	}
}
