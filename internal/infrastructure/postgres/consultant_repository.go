package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
)

var _ repository.ConsultantRepository = (*ConsultantRepo)(nil)

// ConsultantRepo perfil único del consultor (fila id = 1).
type ConsultantRepo struct {
	q Querier
}

func NewConsultantRepository(q Querier) *ConsultantRepo {
	return &ConsultantRepo{q: q}
}

func (r *ConsultantRepo) Get(ctx context.Context) (*entity.ConsultantProfile, error) {
	var c entity.ConsultantProfile
	err := r.q.QueryRow(ctx, `SELECT name, phone, email, passcode_hash FROM consultant_profile WHERE id = 1`).
		Scan(&c.Name, &c.Phone, &c.Email, &c.PasscodeHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultant: %w", err)
	}
	return &c, nil
}

func (r *ConsultantRepo) Save(ctx context.Context, c *entity.ConsultantProfile) error {
	query := `
		INSERT INTO consultant_profile (id, name, phone, email, passcode_hash, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email,
			passcode_hash = EXCLUDED.passcode_hash, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, c.Name, c.Phone, c.Email, c.PasscodeHash); err != nil {
		return fmt.Errorf("upsert consultant: %w", err)
	}
	return nil
}
