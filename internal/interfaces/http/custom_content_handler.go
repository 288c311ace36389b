package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
)

// CustomContentHandler maneja las peticiones HTTP de formatos y
// legislación custom (agrupados bajo /custom-content).
type CustomContentHandler struct {
	formats     *usecase.CustomFormatUseCase
	legislation *usecase.CustomLegislationUseCase
	validate    *validator.Validate
	expose      bool
}

// NewCustomContentHandler construye el handler.
func NewCustomContentHandler(formats *usecase.CustomFormatUseCase, legislation *usecase.CustomLegislationUseCase, expose bool) *CustomContentHandler {
	return &CustomContentHandler{
		formats:     formats,
		legislation: legislation,
		validate:    validator.New(),
		expose:      expose,
	}
}

// ── Formatos ─────────────────────────────────────────────────────────────────

// ListFormats godoc
// @Summary      Listar formatos custom
// @Tags         custom-content
// @Produce      json
// @Param        countryCode  query  string  false  "Filtrar por país (ISO3)"
// @Param        approved     query  bool    false  "Solo aprobados"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/custom-content/formats [get]
func (h *CustomContentHandler) ListFormats(c *fiber.Ctx) error {
	items := h.formats.List(c.Query("countryCode"), c.QueryBool("approved", false))
	return ok(c, fiber.StatusOK, items, dto.NewMeta())
}

// CreateFormat godoc
// @Summary      Crear formato custom
// @Tags         custom-content
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFormatRequest  true  "Datos del formato"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/custom-content/formats [post]
func (h *CustomContentHandler) CreateFormat(c *fiber.Ctx) error {
	var in dto.CreateFormatRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.formats.Create(in)
	if err != nil {
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusCreated, out, dto.NewMeta())
}

// UpdateFormat godoc
// @Summary      Actualizar formato custom
// @Tags         custom-content
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del formato"
// @Param        body  body  dto.UpdateFormatRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-content/formats/{id} [put]
func (h *CustomContentHandler) UpdateFormat(c *fiber.Ctx) error {
	var in dto.UpdateFormatRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.formats.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeFormatNotFound, "formato no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// DeleteFormat godoc
// @Summary      Eliminar formato custom
// @Tags         custom-content
// @Produce      json
// @Param        id  path  string  true  "ID del formato"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-content/formats/{id} [delete]
func (h *CustomContentHandler) DeleteFormat(c *fiber.Ctx) error {
	if err := h.formats.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeFormatNotFound, "formato no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"deleted": true}, dto.NewMeta())
}

// ── Legislación ──────────────────────────────────────────────────────────────

// ListLegislation godoc
// @Summary      Listar legislación custom
// @Tags         custom-content
// @Produce      json
// @Param        countryCode  query  string  false  "Filtrar por país (ISO3)"
// @Param        approved     query  bool    false  "Solo aprobada"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/custom-content/legislation [get]
func (h *CustomContentHandler) ListLegislation(c *fiber.Ctx) error {
	items := h.legislation.List(c.Query("countryCode"), c.QueryBool("approved", false))
	return ok(c, fiber.StatusOK, items, dto.NewMeta())
}

// CreateLegislation godoc
// @Summary      Crear legislación custom
// @Tags         custom-content
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLegislationRequest  true  "Datos de la legislación"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/custom-content/legislation [post]
func (h *CustomContentHandler) CreateLegislation(c *fiber.Ctx) error {
	var in dto.CreateLegislationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.legislation.Create(in)
	if err != nil {
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusCreated, out, dto.NewMeta())
}

// UpdateLegislation godoc
// @Summary      Actualizar legislación custom
// @Tags         custom-content
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la legislación"
// @Param        body  body  dto.UpdateLegislationRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-content/legislation/{id} [put]
func (h *CustomContentHandler) UpdateLegislation(c *fiber.Ctx) error {
	var in dto.UpdateLegislationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.legislation.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLegislationNotFound, "legislación no encontrada", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// DeleteLegislation godoc
// @Summary      Eliminar legislación custom
// @Tags         custom-content
// @Produce      json
// @Param        id  path  string  true  "ID de la legislación"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/custom-content/legislation/{id} [delete]
func (h *CustomContentHandler) DeleteLegislation(c *fiber.Ctx) error {
	if err := h.legislation.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLegislationNotFound, "legislación no encontrada", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"deleted": true}, dto.NewMeta())
}
