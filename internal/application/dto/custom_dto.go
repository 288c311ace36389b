package dto

// ── Custom links ─────────────────────────────────────────────────────────────

// CreateLinkRequest alta de un enlace custom.
type CreateLinkRequest struct {
	CountryCode string `json:"countryCode" validate:"required,len=3,alpha"`
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	CreatedBy   string `json:"createdBy" validate:"omitempty,max=100"`
}

// UpdateLinkRequest actualización parcial de un enlace custom. Solo los
// campos presentes se aplican; id y createdAt son inmutables.
type UpdateLinkRequest struct {
	CountryCode *string `json:"countryCode" validate:"omitempty,len=3,alpha"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Approved    *bool   `json:"approved"`
	ApprovedBy  string  `json:"approvedBy" validate:"omitempty,max=100"`
}

// ── Custom formats ───────────────────────────────────────────────────────────

// CreateFormatRequest alta de un formato custom.
type CreateFormatRequest struct {
	CountryCode      string `json:"countryCode" validate:"required,len=3,alpha"`
	Channel          string `json:"channel" validate:"required,oneof=b2g b2b b2c"`
	Type             string `json:"type" validate:"required,oneof=specification standard schema"`
	Name             string `json:"name" validate:"required,max=200"`
	Version          string `json:"version" validate:"omitempty,max=50"`
	SpecificationURL string `json:"specificationUrl" validate:"omitempty,url"`
	AuthorityName    string `json:"authorityName" validate:"omitempty,max=200"`
	CreatedBy        string `json:"createdBy" validate:"omitempty,max=100"`
}

// UpdateFormatRequest actualización parcial de un formato custom.
type UpdateFormatRequest struct {
	CountryCode      *string `json:"countryCode" validate:"omitempty,len=3,alpha"`
	Channel          *string `json:"channel" validate:"omitempty,oneof=b2g b2b b2c"`
	Type             *string `json:"type" validate:"omitempty,oneof=specification standard schema"`
	Name             *string `json:"name" validate:"omitempty,max=200"`
	Version          *string `json:"version" validate:"omitempty,max=50"`
	SpecificationURL *string `json:"specificationUrl" validate:"omitempty,url"`
	AuthorityName    *string `json:"authorityName" validate:"omitempty,max=200"`
	Approved         *bool   `json:"approved"`
	ApprovedBy       string  `json:"approvedBy" validate:"omitempty,max=100"`
}

// ── Custom legislation ───────────────────────────────────────────────────────

// CreateLegislationRequest alta de legislación custom.
type CreateLegislationRequest struct {
	CountryCode   string `json:"countryCode" validate:"required,len=3,alpha"`
	Name          string `json:"name" validate:"required,max=300"`
	URL           string `json:"url" validate:"omitempty,url"`
	Language      string `json:"language" validate:"omitempty,max=50"`
	Channel       string `json:"channel" validate:"omitempty,oneof=b2g b2b b2c"`
	EffectiveDate string `json:"effectiveDate" validate:"omitempty,datetime=2006-01-02"`
	CreatedBy     string `json:"createdBy" validate:"omitempty,max=100"`
}

// UpdateLegislationRequest actualización parcial de legislación custom.
type UpdateLegislationRequest struct {
	CountryCode   *string `json:"countryCode" validate:"omitempty,len=3,alpha"`
	Name          *string `json:"name" validate:"omitempty,max=300"`
	URL           *string `json:"url" validate:"omitempty,url"`
	Language      *string `json:"language" validate:"omitempty,max=50"`
	Channel       *string `json:"channel" validate:"omitempty,oneof=b2g b2b b2c"`
	EffectiveDate *string `json:"effectiveDate" validate:"omitempty,datetime=2006-01-02"`
	Approved      *bool   `json:"approved"`
	ApprovedBy    string  `json:"approvedBy" validate:"omitempty,max=100"`
}

// ApproveRequest aprobación de un registro pendiente.
type ApproveRequest struct {
	ApprovedBy string `json:"approvedBy" validate:"omitempty,max=100"`
}

// PendingResponse registros pendientes de aprobación agrupados por colección.
type PendingResponse struct {
	Links       any `json:"links"`
	Formats     any `json:"formats"`
	Legislation any `json:"legislation"`
}
