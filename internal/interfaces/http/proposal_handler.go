package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/proposal"
)

// ProposalHandler historial de propuestas guardadas (protegido).
type ProposalHandler struct {
	uc *proposal.UseCase
}

// NewProposalHandler construye el handler.
func NewProposalHandler(uc *proposal.UseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

// List godoc
// @Summary      Historial de propuestas
// @Tags         proposals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProposalSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/proposals [get]
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalle de una propuesta
// @Tags         proposals
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.ProposalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposals/{id} [get]
func (h *ProposalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una propuesta
// @Tags         proposals
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposals/{id} [delete]
func (h *ProposalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reopen godoc
// @Summary      Reabrir en la sesión de edición
// @Tags         proposals
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposals/{id}/reopen [post]
func (h *ProposalHandler) Reopen(c *fiber.Ctx) error {
	out, err := h.uc.Reopen(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      PDF de una propuesta guardada
// @Tags         proposals
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path      string  true  "ID"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposals/{id}/pdf [get]
func (h *ProposalHandler) PDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.ProposalPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, b, filename)
}
