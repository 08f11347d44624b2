package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/dto"
	"github.com/jhoicas/Propostas-api/internal/application/proposal"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
)

// DraftHandler sesión de edición de la propuesta (protegido).
// Cada PUT reemplaza un grupo de campos y devuelve el estado con precios recalculados.
type DraftHandler struct {
	uc *proposal.UseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *proposal.UseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Get godoc
// @Summary      Estado actual de la sesión
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.CurrentDraft())
}

// apply parsea el cuerpo en T, lo convierte en comando y lo aplica.
func apply[T any](c *fiber.Ctx, uc *proposal.UseCase, toCmd func(T) (proposal.Command, error)) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	cmd, err := toCmd(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(uc.ApplyToDraft(cmd))
}

// SetClient godoc
// @Summary      Datos del cliente
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientDTO  true  "cliente"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/client [put]
func (h *DraftHandler) SetClient(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.ClientDTO) (proposal.Command, error) {
		return proposal.SetClient{Client: in.ToEntity()}, nil
	})
}

// ChangeProduct godoc
// @Summary      Cambiar de producto
// @Description  Cantidades y adicionales vuelven a cero.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "producto"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/product [put]
func (h *DraftHandler) ChangeProduct(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.ProductRequest) (proposal.Command, error) {
		p, err := pricing.ParseProduct(in.Product)
		if err != nil {
			return nil, err
		}
		return proposal.ChangeProduct{Product: p}, nil
	})
}

// SetUsage godoc
// @Summary      Cantidades mensuales
// @Description  Valores inválidos o negativos se guardan como 0.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsageDTO  true  "cantidades"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/draft/usage [put]
func (h *DraftHandler) SetUsage(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.UsageDTO) (proposal.Command, error) {
		return proposal.SetUsage{Usage: in.ToDomain()}, nil
	})
}

// SetAddons godoc
// @Summary      Módulos y entrenamientos
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  pricing.Addons  true  "adicionales"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/draft/addons [put]
func (h *DraftHandler) SetAddons(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in pricing.Addons) (proposal.Command, error) {
		return proposal.SetAddons{Addons: in}, nil
	})
}

// SetDiscounts godoc
// @Summary      Tasa de setup y descuentos
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiscountsDTO  true  "setupFee + monthly/setup/annual"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/discounts [put]
func (h *DraftHandler) SetDiscounts(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.DiscountsDTO) (proposal.Command, error) {
		d, err := in.ToDomain()
		if err != nil {
			return nil, err
		}
		return proposal.SetDiscounts{SetupFee: in.SetupFee.Decimal, Discounts: d}, nil
	})
}

// SetMigration godoc
// @Summary      Migración de datos
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MigrationDTO  true  "migración"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/migration [put]
func (h *DraftHandler) SetMigration(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.MigrationDTO) (proposal.Command, error) {
		m, err := in.ToDomain()
		if err != nil {
			return nil, err
		}
		return proposal.SetMigration{Migration: m}, nil
	})
}

// SetExtras godoc
// @Summary      Servicios extra
// @Description  Reemplaza la lista completa; las líneas sin id reciben uno nuevo.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ExtraServiceDTO  true  "líneas"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/extras [put]
func (h *DraftHandler) SetExtras(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in []dto.ExtraServiceDTO) (proposal.Command, error) {
		lines, err := dto.ExtrasToDomain(in)
		if err != nil {
			return nil, err
		}
		return proposal.SetExtras{Extras: lines}, nil
	})
}

// SetTerms godoc
// @Summary      Condiciones comerciales
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TermsDTO  true  "validez, ciclo, parcelas, fechas, condiciones"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/terms [put]
func (h *DraftHandler) SetTerms(c *fiber.Ctx) error {
	return apply(c, h.uc, func(in dto.TermsDTO) (proposal.Command, error) {
		t, err := in.ToDomain(h.uc.ValidityDays())
		if err != nil {
			return nil, err
		}
		return proposal.SetTerms{Terms: t}, nil
	})
}

// Reset godoc
// @Summary      Nueva propuesta
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft/reset [post]
func (h *DraftHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.uc.ResetDraft())
}

// Save godoc
// @Summary      Guardar en el historial
// @Description  Una propuesta reabierta reemplaza su entrada (mismo id).
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ProposalResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/draft/save [post]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.SaveDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      PDF de la sesión actual
// @Tags         draft
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/draft/pdf [get]
func (h *DraftHandler) PDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.DraftPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, b, filename)
}

func sendPDF(c *fiber.Ctx, b []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
