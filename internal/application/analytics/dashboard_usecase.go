// Package analytics contiene el panel de desempeño comercial sobre el
// historial de propuestas.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
)

// Períodos del filtro.
const (
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

const dateLayout = "2006-01-02"

// DashboardUseCase indicadores de las propuestas creadas en un período.
//
// Fuente de datos: ProposalRepository.List; el filtrado se hace en memoria
// porque el historial es un único documento.
type DashboardUseCase struct {
	repo repository.ProposalRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ProposalRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetPerformance calcula totales del período:
//   - total de propuestas y suma de mensualidades
//   - total anual (= mensual × 12) y promedio mensual por propuesta
//   - suma de setups y desglose por producto
func (uc *DashboardUseCase) GetPerformance(ctx context.Context, f dto.PerformanceFilter) (*dto.PerformanceDTO, error) {
	// ── Rango de fechas ────────────────────────────────────────────────────────
	period, from, to, label, err := uc.resolvePeriod(f)
	if err != nil {
		return nil, err
	}

	// ── Historial ──────────────────────────────────────────────────────────────
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar propuestas: %w", err)
	}

	out := &dto.PerformanceDTO{
		Period:         period,
		PeriodLabel:    label,
		From:           from,
		To:             to,
		MonthlyTotal:   decimal.Zero,
		AnnualTotal:    decimal.Zero,
		AverageMonthly: decimal.Zero,
		SetupTotal:     decimal.Zero,
		ByProduct:      []dto.ProductPerformanceDTO{},
	}
	byProduct := make(map[pricing.Product]*dto.ProductPerformanceDTO)
	for _, p := range list {
		if p.CreatedAt.Before(from) || p.CreatedAt.After(to) {
			continue
		}
		out.TotalProposals++
		out.MonthlyTotal = out.MonthlyTotal.Add(p.MonthlyFinal)
		out.SetupTotal = out.SetupTotal.Add(p.SetupFinal)

		row, ok := byProduct[p.Product]
		if !ok {
			row = &dto.ProductPerformanceDTO{
				Product:      p.Product,
				ProductName:  p.Product.DisplayName(),
				MonthlyTotal: decimal.Zero,
				SetupTotal:   decimal.Zero,
			}
			byProduct[p.Product] = row
		}
		row.Count++
		row.MonthlyTotal = row.MonthlyTotal.Add(p.MonthlyFinal)
		row.SetupTotal = row.SetupTotal.Add(p.SetupFinal)
	}

	out.AnnualTotal = out.MonthlyTotal.Mul(decimal.NewFromInt(12))
	if out.TotalProposals > 0 {
		out.AverageMonthly = out.MonthlyTotal.Div(decimal.NewFromInt(int64(out.TotalProposals))).Round(2)
	}
	// Orden estable: el de la lista cerrada de productos.
	for _, prod := range pricing.Products {
		if row, ok := byProduct[prod]; ok {
			out.ByProduct = append(out.ByProduct, *row)
		}
	}
	return out, nil
}

// resolvePeriod traduce el filtro a [from, to] en la zona horaria local.
// Período vacío = month.
func (uc *DashboardUseCase) resolvePeriod(f dto.PerformanceFilter) (period string, from, to time.Time, label string, err error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	period = strings.ToLower(strings.TrimSpace(f.Period))
	switch period {
	case PeriodToday:
		return period, todayStart, todayEnd, "Hoje", nil
	case PeriodWeek:
		return period, todayStart.AddDate(0, 0, -7), todayEnd, "Últimos 7 dias", nil
	case "", PeriodMonth:
		return PeriodMonth, todayStart.AddDate(0, -1, 0), todayEnd, "Último mês", nil
	case PeriodCustom:
		from, to = time.Time{}, todayEnd
		if s := strings.TrimSpace(f.Start); s != "" {
			if from, err = time.ParseInLocation(dateLayout, s, now.Location()); err != nil {
				return "", from, to, "", fmt.Errorf("%w: start %q", domain.ErrInvalidInput, s)
			}
		}
		if e := strings.TrimSpace(f.End); e != "" {
			end, perr := time.ParseInLocation(dateLayout, e, now.Location())
			if perr != nil {
				return "", from, to, "", fmt.Errorf("%w: end %q", domain.ErrInvalidInput, e)
			}
			to = end.Add(24*time.Hour - time.Nanosecond)
		}
		if to.Before(from) {
			return "", from, to, "", fmt.Errorf("%w: end anterior a start", domain.ErrInvalidInput)
		}
		label = "Período customizado"
		if f.Start != "" && f.End != "" {
			label = from.Format("02/01/2006") + " - " + to.Format("02/01/2006")
		}
		return period, from, to, label, nil
	}
	return "", from, to, "", fmt.Errorf("%w: período %q", domain.ErrInvalidInput, f.Period)
}
