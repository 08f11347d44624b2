package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/auth"
	"github.com/jhoicas/Propostas-api/internal/application/dto"
)

// AuthHandler perfil del consultor y emisión de sesión.
type AuthHandler struct {
	uc *auth.ConsultantUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.ConsultantUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Perfil del consultor
// @Tags         consultant
// @Produce      json
// @Success      200  {object}  dto.ConsultantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultant [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveProfile godoc
// @Summary      Guardar perfil del consultor
// @Description  Nombre y email obligatorios. Devuelve un token de sesión nuevo.
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsultantRequest  true  "name, email, phone, passcode"
// @Success      200   {object}  dto.ConsultantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/consultant [put]
func (h *AuthHandler) SaveProfile(c *fiber.Ctx) error {
	var in dto.ConsultantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SaveProfile(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StartSession godoc
// @Summary      Iniciar sesión del consultor
// @Tags         consultant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  false  "passcode (si el perfil tiene clave)"
// @Success      200   {object}  dto.ConsultantResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consultant/session [post]
func (h *AuthHandler) StartSession(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.StartSession(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
