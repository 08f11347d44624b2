package dto

import "github.com/jhoicas/Propostas-api/internal/domain/entity"

// ConsultantRequest cuerpo de PUT /api/consultant.
// Passcode define o cambia la clave; CurrentPasscode es obligatoria si ya existe una.
type ConsultantRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Passcode        string `json:"passcode,omitempty"`
	CurrentPasscode string `json:"currentPasscode,omitempty"`
}

// SessionRequest cuerpo de POST /api/consultant/session.
type SessionRequest struct {
	Passcode string `json:"passcode"`
}

// ConsultantResponse perfil (sin clave) más el token de sesión.
type ConsultantResponse struct {
	Profile     entity.ConsultantProfile `json:"profile"`
	HasPasscode bool                     `json:"hasPasscode"`
	Token       string                   `json:"token,omitempty"`
}
