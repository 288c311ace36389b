package domain

import "time"

// Status estado de facturación electrónica de un canal (b2g/b2b/b2c).
type Status string

const (
	StatusNone      Status = "none"
	StatusPlanned   Status = "planned"
	StatusPermitted Status = "permitted"
	StatusMandatory Status = "mandatory"
)

// ParseStatus normaliza el estado crudo de la fuente de datos.
// Valores desconocidos o vacíos colapsan a "none": la salida del merge
// nunca expone un estado fuera del conjunto permitido.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusPlanned:
		return StatusPlanned
	case StatusPermitted:
		return StatusPermitted
	case StatusMandatory:
		return StatusMandatory
	default:
		return StatusNone
	}
}

// Format formato de factura electrónica (UBL, Factur-X, CFDI, etc.).
type Format struct {
	Name          string `json:"name"`
	Version       string `json:"version,omitempty"`
	Specification string `json:"specification,omitempty"`
	Authority     string `json:"authority,omitempty"`
}

// Legislation referencia a la legislación que regula el canal.
type Legislation struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Language string `json:"language,omitempty"`
}

// ComplianceStatus estado normalizado de un canal. Formats nunca es nil
// y Legislation.Name existe siempre (vacío si la fuente no lo trae);
// ImplementationDate se conserva ausente si la fuente no lo define.
type ComplianceStatus struct {
	Status             Status      `json:"status"`
	ImplementationDate *string     `json:"implementationDate,omitempty"`
	Formats            []Format    `json:"formats"`
	Legislation        Legislation `json:"legislation"`
}

// EInvoicing estado por canal. Cada país merged tiene exactamente una
// entrada por canal; la ausencia se representa con el estado por defecto.
type EInvoicing struct {
	B2G         ComplianceStatus `json:"b2g"`
	B2B         ComplianceStatus `json:"b2b"`
	B2C         ComplianceStatus `json:"b2c"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// Country unidad canónica resultante del merge país + compliance.
type Country struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsoCode2   string     `json:"isoCode2"`
	IsoCode3   string     `json:"isoCode3"`
	Continent  string     `json:"continent"`
	Region     string     `json:"region,omitempty"`
	EInvoicing EInvoicing `json:"eInvoicing"`
}

// ── Tipos crudos de las dos fuentes JSON ─────────────────────────────────────

// BaseCountry registro básico de countries.json.
type BaseCountry struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	IsoCode2  string `json:"isoCode2"`
	IsoCode3  string `json:"isoCode3"`
	Continent string `json:"continent"`
	Region    string `json:"region,omitempty"`
}

// ComplianceRecord registro de compliance-data.json. Los sub-objetos son
// opcionales en la fuente; el merge los normaliza.
type ComplianceRecord struct {
	IsoCode3   string            `json:"isoCode3,omitempty"`
	IsoCode2   string            `json:"isoCode2,omitempty"`
	Name       string            `json:"name"`
	Continent  string            `json:"continent,omitempty"`
	Region     string            `json:"region,omitempty"`
	EInvoicing *EInvoicingRecord `json:"eInvoicing,omitempty"`
}

// EInvoicingRecord bloque eInvoicing crudo, con canales opcionales.
type EInvoicingRecord struct {
	B2G         *StatusRecord `json:"b2g,omitempty"`
	B2B         *StatusRecord `json:"b2b,omitempty"`
	B2C         *StatusRecord `json:"b2c,omitempty"`
	LastUpdated string        `json:"lastUpdated,omitempty"`
}

// StatusRecord estado crudo de un canal, antes de normalizar.
type StatusRecord struct {
	Status             string       `json:"status,omitempty"`
	ImplementationDate *string      `json:"implementationDate,omitempty"`
	Formats            []Format     `json:"formats,omitempty"`
	Legislation        *Legislation `json:"legislation,omitempty"`
}

// DataSnapshot contenido crudo de las dos fuentes en un instante dado.
type DataSnapshot struct {
	Countries  []BaseCountry
	Compliance []ComplianceRecord
}
