package domain

import "time"

// Channel canal de facturación para contenido custom.
type Channel string

const (
	ChannelB2G Channel = "b2g"
	ChannelB2B Channel = "b2b"
	ChannelB2C Channel = "b2c"
)

// FormatType tipo de documento para un formato custom.
type FormatType string

const (
	FormatTypeSpecification FormatType = "specification"
	FormatTypeStandard      FormatType = "standard"
	FormatTypeSchema        FormatType = "schema"
)

// Submission campos comunes a todos los registros enviados por usuarios.
// Approved arranca en true solo cuando no hay identidad de creador
// (placeholder hasta que exista un sistema de auth); si CreatedBy viene,
// el registro queda pendiente de aprobación de un admin.
type Submission struct {
	ID         string     `json:"id"`
	CreatedBy  string     `json:"createdBy,omitempty"`
	Approved   bool       `json:"approved"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// RecordID implementa repository.Record.
func (s Submission) RecordID() string { return s.ID }

// CustomLink enlace útil aportado por usuarios para un país.
type CustomLink struct {
	Submission
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// CustomFormat formato de factura aportado por usuarios.
type CustomFormat struct {
	Submission
	CountryCode      string     `json:"countryCode"`
	CountryName      string     `json:"countryName,omitempty"`
	Channel          Channel    `json:"channel"`
	Type             FormatType `json:"type"`
	Name             string     `json:"name"`
	Version          string     `json:"version,omitempty"`
	SpecificationURL string     `json:"specificationUrl,omitempty"`
	AuthorityName    string     `json:"authorityName,omitempty"`
}

// CustomLegislation legislación aportada por usuarios.
type CustomLegislation struct {
	Submission
	CountryCode   string  `json:"countryCode"`
	CountryName   string  `json:"countryName,omitempty"`
	Name          string  `json:"name"`
	URL           string  `json:"url,omitempty"`
	Language      string  `json:"language,omitempty"`
	Channel       Channel `json:"channel,omitempty"`
	EffectiveDate string  `json:"effectiveDate,omitempty"`
}
