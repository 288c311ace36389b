package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
)

// ok respuesta exitosa con el envelope uniforme.
func ok(c *fiber.Ctx, status int, data any, meta dto.Meta) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// fail respuesta de error con el envelope uniforme.
func fail(c *fiber.Ctx, status int, code, message string, details any) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: false,
		Error:   &dto.ErrorBody{Code: code, Message: message, Details: details},
		Meta:    dto.NewMeta(),
	})
}

// internalError error inesperado: se devuelve INTERNAL_SERVER_ERROR y el
// detalle solo se expone fuera de producción.
func internalError(c *fiber.Ctx, err error, expose bool) error {
	var details any
	if expose {
		details = err.Error()
	}
	return fail(c, fiber.StatusInternalServerError, dto.CodeInternal, "error interno del servidor", details)
}
