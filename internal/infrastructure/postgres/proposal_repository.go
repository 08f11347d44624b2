package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación de ProposalRepository (usable con pool o tx).
type ProposalRepo struct {
	q Querier
}

// NewProposalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProposalRepository(q Querier) *ProposalRepo {
	return &ProposalRepo{q: q}
}

const proposalColumns = `id, number, product, client_name, consultant, form_state, monthly_final, setup_final, created_at, updated_at`

// Save inserta o reemplaza la propuesta (upsert por id).
func (r *ProposalRepo) Save(ctx context.Context, p *entity.SavedProposal) error {
	query := `
		INSERT INTO proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			number = EXCLUDED.number,
			product = EXCLUDED.product,
			client_name = EXCLUDED.client_name,
			consultant = EXCLUDED.consultant,
			form_state = EXCLUDED.form_state,
			monthly_final = EXCLUDED.monthly_final,
			setup_final = EXCLUDED.setup_final,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Number, string(p.Product), p.ClientName, p.Consultant, p.Form,
		p.MonthlyFinal, p.SetupFinal, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert proposal: %w", err)
	}
	return nil
}

func scanProposal(row pgx.Row) (*entity.SavedProposal, error) {
	var p entity.SavedProposal
	var product string
	err := row.Scan(
		&p.ID, &p.Number, &product, &p.ClientName, &p.Consultant, &p.Form,
		&p.MonthlyFinal, &p.SetupFinal, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Product = pricing.Product(product)
	return &p, nil
}

// GetByID obtiene una propuesta por ID; nil, nil si no existe.
func (r *ProposalRepo) GetByID(ctx context.Context, id string) (*entity.SavedProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`
	p, err := scanProposal(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

// List devuelve el historial, más recientes primero.
func (r *ProposalRepo) List(ctx context.Context) ([]*entity.SavedProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var list []*entity.SavedProposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina por ID.
func (r *ProposalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
