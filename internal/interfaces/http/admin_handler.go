package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
)

// AdminHandler workflow de aprobación de contenido enviado por usuarios.
// Sin autenticación por ahora: el sistema de auth es trabajo futuro y
// estos endpoints son su placeholder.
type AdminHandler struct {
	links       *usecase.CustomLinkUseCase
	formats     *usecase.CustomFormatUseCase
	legislation *usecase.CustomLegislationUseCase
	validate    *validator.Validate
	expose      bool
}

// NewAdminHandler construye el handler.
func NewAdminHandler(links *usecase.CustomLinkUseCase, formats *usecase.CustomFormatUseCase, legislation *usecase.CustomLegislationUseCase, expose bool) *AdminHandler {
	return &AdminHandler{
		links:       links,
		formats:     formats,
		legislation: legislation,
		validate:    validator.New(),
		expose:      expose,
	}
}

// Pending godoc
// @Summary      Registros pendientes de aprobación de las tres colecciones
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/admin/pending [get]
func (h *AdminHandler) Pending(c *fiber.Ctx) error {
	out := dto.PendingResponse{
		Links:       h.links.ListPending(),
		Formats:     h.formats.ListPending(),
		Legislation: h.legislation.ListPending(),
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// ApproveLink godoc
// @Summary      Aprobar un enlace custom
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string              true   "ID del enlace"
// @Param        body  body  dto.ApproveRequest  false  "Quién aprueba"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/custom-links/{id}/approve [post]
func (h *AdminHandler) ApproveLink(c *fiber.Ctx) error {
	in, err := h.parseApprove(c)
	if err != nil {
		return err
	}
	out, err := h.links.Approve(c.Params("id"), in.ApprovedBy)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLinkNotFound, "enlace no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// ApproveFormat godoc
// @Summary      Aprobar un formato custom
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string              true   "ID del formato"
// @Param        body  body  dto.ApproveRequest  false  "Quién aprueba"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/custom-content/formats/{id}/approve [post]
func (h *AdminHandler) ApproveFormat(c *fiber.Ctx) error {
	in, err := h.parseApprove(c)
	if err != nil {
		return err
	}
	out, err := h.formats.Approve(c.Params("id"), in.ApprovedBy)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeFormatNotFound, "formato no encontrado", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// ApproveLegislation godoc
// @Summary      Aprobar legislación custom
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string              true   "ID de la legislación"
// @Param        body  body  dto.ApproveRequest  false  "Quién aprueba"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/custom-content/legislation/{id}/approve [post]
func (h *AdminHandler) ApproveLegislation(c *fiber.Ctx) error {
	in, err := h.parseApprove(c)
	if err != nil {
		return err
	}
	out, err := h.legislation.Approve(c.Params("id"), in.ApprovedBy)
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, dto.CodeLegislationNotFound, "legislación no encontrada", nil)
		}
		return internalError(c, err, h.expose)
	}
	return ok(c, fiber.StatusOK, out, dto.NewMeta())
}

// parseApprove el cuerpo es opcional; sin cuerpo se aprueba como "admin".
func (h *AdminHandler) parseApprove(c *fiber.Ctx) (dto.ApproveRequest, error) {
	var in dto.ApproveRequest
	if len(c.Body()) == 0 {
		return in, nil
	}
	if err := c.BodyParser(&in); err != nil {
		return in, invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return in, validationError(c, err)
	}
	return in, nil
}
