package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/pdf"
)

// CountryHandler maneja las peticiones HTTP de países (solo lectura).
type CountryHandler struct {
	uc       *usecase.CountryUseCase
	reports  *pdf.ComplianceReportGenerator
	validate *validator.Validate
	expose   bool
}

// NewCountryHandler construye el handler.
func NewCountryHandler(uc *usecase.CountryUseCase, reports *pdf.ComplianceReportGenerator, expose bool) *CountryHandler {
	return &CountryHandler{
		uc:       uc,
		reports:  reports,
		validate: validator.New(),
		expose:   expose,
	}
}

// List godoc
// @Summary      Listar países con su estado de cumplimiento
// @Tags         countries
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(50)
// @Param        continent  query  string  false  "Continente (match exacto)"
// @Param        region     query  string  false  "Región (substring)"
// @Param        search     query  string  false  "Búsqueda por nombre o código ISO"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/v1/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	var q dto.CountryQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "parámetros de consulta inválidos", nil)
	}
	if err := h.validate.Struct(q); err != nil {
		return validationError(c, err)
	}
	q.Normalize()

	items, total, err := h.uc.List(q)
	if err != nil {
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, items, dto.NewListMeta(total, q.Page, q.Limit))
}

// GetByCode godoc
// @Summary      Obtener un país por código ISO3
// @Tags         countries
// @Produce      json
// @Param        countryId  path  string  true  "Código ISO 3166-1 alpha-3 (case-insensitive)"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/countries/{countryId} [get]
func (h *CountryHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("countryId")
	country, err := h.uc.GetByCode(code)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeCountryNotFound,
				fmt.Sprintf("país %q no encontrado", code), nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, country, dto.NewMeta())
}

// Report godoc
// @Summary      Reporte PDF de cumplimiento de un país
// @Tags         countries
// @Produce      application/pdf
// @Param        countryId  path  string  true  "Código ISO 3166-1 alpha-3"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/countries/{countryId}/report [get]
func (h *CountryHandler) Report(c *fiber.Ctx) error {
	code := c.Params("countryId")
	country, err := h.uc.GetByCode(code)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeCountryNotFound,
				fmt.Sprintf("país %q no encontrado", code), nil)
		}
		return internalError(c, err, h.expose)
	}
	raw, err := h.reports.GenerateCountryReport(c.Context(), country)
	if err != nil {
		return internalError(c, err, h.expose)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="compliance-%s.pdf"`, country.IsoCode3))
	return c.Send(raw)
}

// Continents godoc
// @Summary      Continentes distintos con conteo de países
// @Tags         countries
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/filters/continents [get]
func (h *CountryHandler) Continents(c *fiber.Ctx) error {
	out, err := h.uc.Continents()
	if err != nil {
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}
