package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
)

// fieldError detalle de una violación de validación por campo.
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// validationDetails convierte los errores del validator en detalles
// legibles por el cliente.
func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// validationError respuesta 400 VALIDATION_ERROR.
func validationError(c *fiber.Ctx, err error) error {
	return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "entrada inválida", validationDetails(err))
}

// invalidBody respuesta 400 ante un cuerpo JSON que no parsea.
func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "cuerpo inválido", nil)
}
