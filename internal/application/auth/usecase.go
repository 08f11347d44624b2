// Package auth gestiona el perfil del consultor y la emisión de su sesión.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/domain"
	"github.com/jhoicas/Propostas-api/internal/domain/entity"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
	"github.com/jhoicas/Propostas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ConsultantUseCase perfil del consultor y token de sesión.
type ConsultantUseCase struct {
	repo   repository.ConsultantRepository
	jwtCfg JWTConfig
}

// NewConsultantUseCase construye el caso de uso.
func NewConsultantUseCase(repo repository.ConsultantRepository, jwtCfg JWTConfig) *ConsultantUseCase {
	return &ConsultantUseCase{repo: repo, jwtCfg: jwtCfg}
}

// GetProfile perfil actual sin token. domain.ErrNotFound si no está configurado.
func (uc *ConsultantUseCase) GetProfile(ctx context.Context) (*dto.ConsultantResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toConsultantResponse(c, ""), nil
}

// SaveProfile valida y guarda el perfil; devuelve un token nuevo.
// Si el perfil ya tiene clave, CurrentPasscode debe coincidir.
func (uc *ConsultantUseCase) SaveProfile(ctx context.Context, in dto.ConsultantRequest) (*dto.ConsultantResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}

	existing, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	hash := ""
	if existing != nil && existing.HasPasscode() {
		if err := checkPasscode(existing.PasscodeHash, in.CurrentPasscode); err != nil {
			return nil, err
		}
		hash = existing.PasscodeHash
	}
	if in.Passcode != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(in.Passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(b)
	}

	c := &entity.ConsultantProfile{
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        email,
		PasscodeHash: hash,
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	token, err := uc.issue(c)
	if err != nil {
		return nil, err
	}
	return toConsultantResponse(c, token), nil
}

// StartSession emite un token para el perfil existente, verificando la clave si la hay.
func (uc *ConsultantUseCase) StartSession(ctx context.Context, in dto.SessionRequest) (*dto.ConsultantResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.Complete() {
		return nil, domain.ErrProfileRequired
	}
	if c.HasPasscode() {
		if err := checkPasscode(c.PasscodeHash, in.Passcode); err != nil {
			return nil, err
		}
	}
	token, err := uc.issue(c)
	if err != nil {
		return nil, err
	}
	return toConsultantResponse(c, token), nil
}

func (uc *ConsultantUseCase) issue(c *entity.ConsultantProfile) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, c.Email, c.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func checkPasscode(hash, passcode string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func toConsultantResponse(c *entity.ConsultantProfile, token string) *dto.ConsultantResponse {
	return &dto.ConsultantResponse{
		Profile:     c.Public(),
		HasPasscode: c.HasPasscode(),
		Token:       token,
	}
}
