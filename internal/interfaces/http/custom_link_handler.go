package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
)

// CustomLinkHandler maneja las peticiones HTTP de enlaces custom.
type CustomLinkHandler struct {
	uc       *usecase.CustomLinkUseCase
	validate *validator.Validate
	expose   bool
}

// NewCustomLinkHandler construye el handler.
func NewCustomLinkHandler(uc *usecase.CustomLinkUseCase, expose bool) *CustomLinkHandler {
	return &CustomLinkHandler{uc: uc, validate: validator.New(), expose: expose}
}

// List godoc
// @Summary      Listar enlaces custom
// @Tags         custom-links
// @Produce      json
// @Param        countryCode  query  string  false  "Filtrar por país (ISO3)"
// @Param        approved     query  bool    false  "Solo aprobados"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/custom-links [get]
func (h *CustomLinkHandler) List(c *fiber.Ctx) error {
	items := h.uc.List(c.Query("countryCode"), c.QueryBool("approved", false))
	return ok(c, fiber.StatusOK, items, dto.NewMeta())
}

// Create godoc
// @Summary      Crear enlace custom
// @Tags         custom-links
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLinkRequest  true  "Datos del enlace"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/custom-links [post]
func (h *CustomLinkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusCreated, out, dto.NewMeta())
}

// Update godoc
// @Summary      Actualizar enlace custom
// @Tags         custom-links
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del enlace"
// @Param        body  body  dto.UpdateLinkRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-links/{id} [put]
func (h *CustomLinkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLinkNotFound, "enlace no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// Delete godoc
// @Summary      Eliminar enlace custom
// @Tags         custom-links
// @Produce      json
// @Param        id  path  string  true  "ID del enlace"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-links/{id} [delete]
func (h *CustomLinkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLinkNotFound, "enlace no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"deleted": true}, dto.NewMeta())
}
