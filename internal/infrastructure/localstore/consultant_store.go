package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
	"github.com/jhoicas/Propostas-api/pkg/logger"
)

// ConsultantStore implementa ConsultantRepository sobre el documento consultantProfile.
type ConsultantStore struct {
	kv  KV
	log *logger.Logger
	now func() time.Time
}

var _ repository.ConsultantRepository = (*ConsultantStore)(nil)

func NewConsultantStore(kv KV, log *logger.Logger) *ConsultantStore {
	return &ConsultantStore{kv: kv, log: log.Component("localstore"), now: time.Now}
}

// Get devuelve nil, nil si no hay perfil o si el documento no se puede leer.
func (s *ConsultantStore) Get(ctx context.Context) (*entity.ConsultantProfile, error) {
	raw, err := s.kv.Get(ctx, KeyConsultantProfile)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", KeyConsultantProfile).Msg("no se pudo cargar el perfil")
		return nil, nil
	}
	var c entity.ConsultantProfile
	if err := decodeEnvelope(raw, &c); err != nil {
		s.log.Error().Err(err).Str("key", KeyConsultantProfile).Msg("perfil corrupto")
		return nil, nil
	}
	return &c, nil
}

func (s *ConsultantStore) Save(ctx context.Context, c *entity.ConsultantProfile) error {
	b, err := encodeEnvelope(c, s.now())
	if err != nil {
		return fmt.Errorf("serializar perfil: %w", err)
	}
	if err := s.kv.Put(ctx, KeyConsultantProfile, b); err != nil {
		s.log.Error().Err(err).Str("key", KeyConsultantProfile).Msg("no se pudo guardar el perfil")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
