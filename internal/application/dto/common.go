package dto

import "time"

// Envelope formato uniforme de todas las respuestas de la API:
// {success, data?, error?, meta}.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

// ErrorBody cuerpo de error dentro del envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta metadatos de respuesta. Los campos de paginación solo aparecen
// en listados.
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	Total     *int      `json:"total,omitempty"`
	Page      *int      `json:"page,omitempty"`
	Limit     *int      `json:"limit,omitempty"`
}

// NewMeta meta básica con timestamp actual.
func NewMeta() Meta {
	return Meta{Timestamp: time.Now().UTC()}
}

// NewListMeta meta de listado paginado.
func NewListMeta(total, page, limit int) Meta {
	m := NewMeta()
	m.Total = &total
	m.Page = &page
	m.Limit = &limit
	return m
}

// Códigos de error estándar de la API.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeCountryNotFound     = "COUNTRY_NOT_FOUND"
	CodeLinkNotFound        = "LINK_NOT_FOUND"
	CodeFormatNotFound      = "FORMAT_NOT_FOUND"
	CodeLegislationNotFound = "LEGISLATION_NOT_FOUND"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)
