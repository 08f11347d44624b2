package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/catalog"
	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/application/proposal"
)

// QuoteHandler cotización sin estado y catálogo de planes (público).
type QuoteHandler struct {
	proposals *proposal.UseCase
	catalog   *catalog.UseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(proposals *proposal.UseCase, catalog *catalog.UseCase) *QuoteHandler {
	return &QuoteHandler{proposals: proposals, catalog: catalog}
}

// Quote godoc
// @Summary      Cotizar un formulario completo
// @Description  Cálculo puro: no modifica la sesión ni el historial.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FormRequest  true  "formulario de propuesta"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Quote(c *fiber.Ctx) error {
	var in dto.FormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	form, err := in.ToFormState(h.proposals.ValidityDays())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.proposals.Quote(form))
}

// Products godoc
// @Summary      Productos disponibles
// @Tags         plans
// @Produce      json
// @Success      200  {array}  dto.ProductDTO
// @Router       /api/plans [get]
func (h *QuoteHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Products())
}

// Plans godoc
// @Summary      Planes y tarifas de un producto
// @Tags         plans
// @Produce      json
// @Param        product  path  string  true  "OFFICE_ADV | CPJ_3C_PLUS | CPJ_COBRANCA | PROMAD"
// @Success      200  {object}  dto.PlanCatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plans/{product} [get]
func (h *QuoteHandler) Plans(c *fiber.Ctx) error {
	out, err := h.catalog.Plans(c.Params("product"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
