package proposal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
	"github.com/jhoicas/Propostas-api/pkg/logger"
)

// Options parámetros de negocio configurables.
type Options struct {
	ValidityDays   int
	CompanyName    string
	DefaultProduct pricing.Product
}

// UseCase cotización, sesión de edición e historial de propuestas.
type UseCase struct {
	repo        repository.ProposalRepository
	consultants repository.ConsultantRepository
	generator   PDFGenerator
	draft       *Draft
	opts        Options
	now         func() time.Time
	log         *logger.Logger
}

// NewUseCase construye el caso de uso con una sesión de edición vacía.
func NewUseCase(
	repo repository.ProposalRepository,
	consultants repository.ConsultantRepository,
	generator PDFGenerator,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if opts.ValidityDays <= 0 {
		opts.ValidityDays = 30
	}
	if opts.DefaultProduct == "" {
		opts.DefaultProduct = pricing.ProductOfficeADV
	}
	return &UseCase{
		repo:        repo,
		consultants: consultants,
		generator:   generator,
		draft:       NewDraft(opts.DefaultProduct, opts.ValidityDays),
		opts:        opts,
		now:         time.Now,
		log:         log.Component("proposal"),
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// ValidityDays validez por defecto de las propuestas.
func (uc *UseCase) ValidityDays() int { return uc.opts.ValidityDays }

// NewNumber número legible PROP-YYYYMMDD-XXXXX.
func NewNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return fmt.Sprintf("PROP-%s-%s", now.Format("20060102"), suffix)
}

// Quote cotiza un formulario completo sin tocar la sesión.
func (uc *UseCase) Quote(form entity.FormState) *dto.QuoteResponse {
	q := uc.quote(form, uc.now())
	return &q
}

func (uc *UseCase) quote(form entity.FormState, from time.Time) dto.QuoteResponse {
	res := pricing.Price(form.PricingInput())
	sched := pricing.BuildPaymentSchedule(res.SetupFinal, res.MonthlyFinal,
		form.Terms.SetupPaymentDate, form.Terms.MonthlyStartDate)
	return dto.QuoteResponse{
		Form:       form,
		Pricing:    res,
		Schedule:   sched,
		ValidUntil: validUntil(from, form.Terms.ValidityDays, uc.opts.ValidityDays).Format(dto.DateLayout),
	}
}

func validUntil(from time.Time, days, fallback int) time.Time {
	if days <= 0 {
		days = fallback
	}
	return from.AddDate(0, 0, days)
}

// ── Sesión de edición ────────────────────────────────────────────────────────

// CurrentDraft estado actual con precios recalculados.
func (uc *UseCase) CurrentDraft() *dto.DraftResponse {
	return uc.draftResponse(uc.draft.Snapshot())
}

// ApplyToDraft aplica un comando a la sesión.
func (uc *UseCase) ApplyToDraft(cmd Command) *dto.DraftResponse {
	if c, ok := cmd.(SetExtras); ok {
		cmd = SetExtras{Extras: withIDs(c.Extras)}
	}
	return uc.draftResponse(uc.draft.Apply(cmd))
}

// ResetDraft descarta la sesión actual.
func (uc *UseCase) ResetDraft() *dto.DraftResponse {
	return uc.draftResponse(uc.draft.Reset())
}

func withIDs(lines []pricing.ExtraServiceLine) []pricing.ExtraServiceLine {
	out := make([]pricing.ExtraServiceLine, len(lines))
	for i, l := range lines {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		out[i] = l
	}
	return out
}

func (uc *UseCase) draftResponse(s DraftSnapshot) *dto.DraftResponse {
	from := s.CreatedAt
	if from.IsZero() {
		from = uc.now()
	}
	return &dto.DraftResponse{
		QuoteResponse: uc.quote(s.Form, from),
		EditingID:     s.EditingID,
		Number:        s.Number,
	}
}

// ── Historial ────────────────────────────────────────────────────────────────

// SaveDraft guarda la sesión en el historial. Una propuesta reabierta conserva
// id, número y fecha de creación y reemplaza su entrada.
func (uc *UseCase) SaveDraft(ctx context.Context) (*dto.ProposalResponse, error) {
	// ── 1. Perfil del consultor ───────────────────────────────────────────────
	consultant, err := uc.requireConsultant(ctx)
	if err != nil {
		return nil, err
	}

	// ── 2. Identidad de la propuesta ──────────────────────────────────────────
	snap := uc.draft.Snapshot()
	now := uc.now()
	id, number, created := snap.EditingID, snap.Number, snap.CreatedAt
	if id == "" {
		id = uuid.NewString()
		created = now
	}
	if number == "" {
		number = NewNumber(now)
	}
	if created.IsZero() {
		created = now
	}

	// ── 3. Totales desnormalizados ────────────────────────────────────────────
	res := pricing.Price(snap.Form.PricingInput())
	clientName := strings.TrimSpace(snap.Form.Client.Name)
	if clientName == "" {
		clientName = entity.DefaultClientName
	}
	p := &entity.SavedProposal{
		ID:           id,
		Number:       number,
		CreatedAt:    created,
		UpdatedAt:    now,
		ClientName:   clientName,
		Consultant:   consultant.Public(),
		Product:      snap.Form.Product,
		Form:         snap.Form,
		MonthlyFinal: res.MonthlyFinal,
		SetupFinal:   res.SetupFinal,
	}

	// ── 4. Persistir ──────────────────────────────────────────────────────────
	if err := uc.repo.Save(ctx, p); err != nil {
		uc.log.Error().Err(err).Str("proposal_id", id).Msg("no se pudo guardar la propuesta")
		return nil, fmt.Errorf("guardar propuesta: %w", err)
	}
	if !uc.draft.markSaved(snap, p) {
		uc.log.Warn().Str("proposal_id", id).Msg("la sesión cambió durante el guardado; no se reasigna la identidad")
	}
	uc.log.Info().Str("proposal_id", id).Str("number", number).Msg("propuesta guardada")
	return uc.proposalResponse(p), nil
}

// List historial, más recientes primero.
func (uc *UseCase) List(ctx context.Context) ([]*dto.ProposalSummaryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposalSummaryResponse, 0, len(list))
	for _, p := range list {
		s := summary(p)
		out = append(out, &s)
	}
	return out, nil
}

// Get propuesta guardada con precios recalculados.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.ProposalResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.proposalResponse(p), nil
}

// Delete elimina una propuesta del historial.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// Reopen carga una copia de la propuesta en la sesión de edición.
func (uc *UseCase) Reopen(ctx context.Context, id string) (*dto.DraftResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.draftResponse(uc.draft.Load(p)), nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.SavedProposal, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *UseCase) requireConsultant(ctx context.Context) (*entity.ConsultantProfile, error) {
	c, err := uc.consultants.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("perfil del consultor: %w", err)
	}
	if c == nil || !c.Complete() {
		return nil, domain.ErrProfileRequired
	}
	return c, nil
}

func summary(p *entity.SavedProposal) dto.ProposalSummaryResponse {
	return dto.ProposalSummaryResponse{
		ID:           p.ID,
		Number:       p.Number,
		ClientName:   p.ClientName,
		Product:      p.Product,
		ProductName:  p.Product.DisplayName(),
		Consultant:   p.Consultant.Name,
		MonthlyFinal: p.MonthlyFinal,
		SetupFinal:   p.SetupFinal,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (uc *UseCase) proposalResponse(p *entity.SavedProposal) *dto.ProposalResponse {
	return &dto.ProposalResponse{
		ProposalSummaryResponse: summary(p),
		ConsultantProfile:       p.Consultant,
		QuoteResponse:           uc.quote(p.Form.Clone(), p.CreatedAt),
	}
}
