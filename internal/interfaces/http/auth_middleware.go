package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/pkg/jwt"
)

// Locals keys para el consultor de la sesión en Fiber.
const (
	LocalConsultantEmail = "consultant_email"
	LocalConsultantName  = "consultant_name"
)

// AuthMiddleware valida el Bearer Token JWT y extrae email y nombre del consultor a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido o expirado"})
		}
		c.Locals(LocalConsultantEmail, claims.Email())
		c.Locals(LocalConsultantName, claims.ConsultantName)
		return c.Next()
	}
}

// GetConsultantEmail devuelve el email del consultor (después del middleware de auth).
func GetConsultantEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalConsultantEmail).(string)
	return s
}

// GetConsultantName devuelve el nombre del consultor (después del middleware de auth).
func GetConsultantName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalConsultantName).(string)
	return s
}
