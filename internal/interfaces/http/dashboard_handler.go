package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Propostas-api/internal/application/analytics"
	"github.com/jhoicas/Propostas-api/internal/application/dto"
)

// DashboardHandler panel de desempeño comercial (protegido).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Performance godoc
// @Summary      Desempeño por período
// @Description  Total de propuestas, suma mensual, anual (× 12), promedio, setup y desglose por producto.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | custom (default month)"
// @Param        start   query  string  false  "Inicio (YYYY-MM-DD), solo custom"
// @Param        end     query  string  false  "Fin (YYYY-MM-DD), solo custom"
// @Success      200  {object}  dto.PerformanceDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/performance [get]
func (h *DashboardHandler) Performance(c *fiber.Ctx) error {
	var f dto.PerformanceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetPerformance(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
