package proposal

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// DraftPDF genera el PDF de la sesión actual. Si la propuesta aún no tiene
// número se le asigna uno, que se conserva al guardarla.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrProfileRequired  si el consultor no configuró su perfil.
func (uc *UseCase) DraftPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	// ── 1. Perfil del consultor ───────────────────────────────────────────────
	consultant, err := uc.requireConsultant(ctx)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Número estable para la sesión ──────────────────────────────────────
	now := uc.now()
	number := uc.draft.ensureNumber(func() string { return NewNumber(now) })
	snap := uc.draft.Snapshot()
	issued := snap.CreatedAt
	if issued.IsZero() {
		issued = now
	}

	// ── 3. Generar ────────────────────────────────────────────────────────────
	return uc.render(ctx, number, issued, consultant.Public(), snap.Form)
}

// ProposalPDF genera el PDF de una propuesta guardada con el consultor que la firmó.
func (uc *UseCase) ProposalPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar propuesta ───────────────────────────────────────────────────
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Generar ────────────────────────────────────────────────────────────
	return uc.render(ctx, p.Number, p.CreatedAt, p.Consultant, p.Form)
}

func (uc *UseCase) render(
	ctx context.Context,
	number string,
	issued time.Time,
	consultant entity.ConsultantProfile,
	form entity.FormState,
) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("pdf: %w: generador no configurado", domain.ErrInvalidInput)
	}
	res := pricing.Price(form.PricingInput())
	doc := &QuoteDocument{
		CompanyName: uc.opts.CompanyName,
		Number:      number,
		IssuedAt:    issued,
		ValidUntil:  validUntil(issued, form.Terms.ValidityDays, uc.opts.ValidityDays),
		Consultant:  consultant,
		Form:        form,
		Pricing:     res,
		Schedule: pricing.BuildPaymentSchedule(res.SetupFinal, res.MonthlyFinal,
			form.Terms.SetupPaymentDate, form.Terms.MonthlyStartDate),
	}
	pdfBytes, err := uc.generator.GenerateQuotePDF(ctx, doc)
	if err != nil {
		uc.log.Error().Err(err).Str("number", number).Msg("no se pudo generar el PDF")
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return pdfBytes, fmt.Sprintf("proposta_%s.pdf", number), nil
}
