package repository

import (
	"context"

	"github.com/jhoicas/Propostas-api/internal/domain/entity"
)

// ProposalRepository historial de propuestas guardadas.
type ProposalRepository interface {
	// Save inserta o reemplaza la propuesta con el mismo ID.
	Save(ctx context.Context, p *entity.SavedProposal) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.SavedProposal, error)
	// List devuelve el historial, más recientes primero.
	List(ctx context.Context) ([]*entity.SavedProposal, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}

// ConsultantRepository perfil único del consultor.
type ConsultantRepository interface {
	// Get devuelve nil, nil si no hay perfil guardado.
	Get(ctx context.Context) (*entity.ConsultantProfile, error)
	Save(ctx context.Context, c *entity.ConsultantProfile) error
}
