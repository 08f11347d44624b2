package localstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
	"github.com/jhoicas/Propostas-api/pkg/logger"
)

// ProposalStore implementa ProposalRepository sobre el documento proposalsHistory.
type ProposalStore struct {
	kv  KV
	log *logger.Logger
	now func() time.Time
	mu  sync.Mutex
}

var _ repository.ProposalRepository = (*ProposalStore)(nil)

// NewProposalStore crea el store del historial.
func NewProposalStore(kv KV, log *logger.Logger) *ProposalStore {
	return &ProposalStore{kv: kv, log: log.Component("localstore"), now: time.Now}
}

// load devuelve el historial; un documento inexistente es un historial vacío.
func (s *ProposalStore) load(ctx context.Context) ([]*entity.SavedProposal, error) {
	raw, err := s.kv.Get(ctx, KeyProposalsHistory)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []*entity.SavedProposal
	if err := decodeEnvelope(raw, &list); err != nil {
		return nil, fmt.Errorf("historial corrupto: %w", err)
	}
	return list, nil
}

func (s *ProposalStore) write(ctx context.Context, list []*entity.SavedProposal) error {
	b, err := encodeEnvelope(list, s.now())
	if err != nil {
		return fmt.Errorf("serializar historial: %w", err)
	}
	return s.kv.Put(ctx, KeyProposalsHistory, b)
}

// loadOrEmpty para lecturas: un fallo se registra y se trata como historial vacío.
func (s *ProposalStore) loadOrEmpty(ctx context.Context) []*entity.SavedProposal {
	list, err := s.load(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("key", KeyProposalsHistory).Msg("no se pudo cargar el historial")
		return nil
	}
	return list
}

// loadForWrite para escrituras: si el documento actual no se puede leer no se sobrescribe.
func (s *ProposalStore) loadForWrite(ctx context.Context) ([]*entity.SavedProposal, error) {
	list, err := s.load(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("key", KeyProposalsHistory).Msg("escritura cancelada: historial ilegible")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return list, nil
}

// Save inserta o reemplaza por ID.
func (s *ProposalStore) Save(ctx context.Context, p *entity.SavedProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}
	cp := p.Clone()
	replaced := false
	for i, existing := range list {
		if existing.ID == p.ID {
			list[i] = cp
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]*entity.SavedProposal{cp}, list...)
	}
	if err := s.write(ctx, list); err != nil {
		s.log.Error().Err(err).Str("key", KeyProposalsHistory).Str("proposal_id", p.ID).Msg("no se pudo guardar la propuesta")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// GetByID devuelve una copia; nil, nil si no existe.
func (s *ProposalStore) GetByID(ctx context.Context, id string) (*entity.SavedProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadOrEmpty(ctx) {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

// List historial ordenado por fecha de creación descendente.
func (s *ProposalStore) List(ctx context.Context) ([]*entity.SavedProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.loadOrEmpty(ctx)
	out := make([]*entity.SavedProposal, 0, len(list))
	for _, p := range list {
		out = append(out, p.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete elimina por ID.
func (s *ProposalStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, p := range list {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	if err := s.write(ctx, list); err != nil {
		s.log.Error().Err(err).Str("key", KeyProposalsHistory).Str("proposal_id", id).Msg("no se pudo eliminar la propuesta")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
