package usecase

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
)

// MergeCountries combina la lista básica de países con los registros de
// compliance y produce la lista canónica: deduplicada por ISO3, con el
// bloque eInvoicing normalizado por canal y ordenada por nombre.
// Función pura: segura para llamadas concurrentes y recálculo idempotente.
func MergeCountries(countries []domain.BaseCountry, compliance []domain.ComplianceRecord) []domain.Country {
	// La clave de join es isoCode3, con el nombre como fallback si la
	// fuente no trae código. En claves duplicadas gana la última.
	byKey := make(map[string]domain.ComplianceRecord, len(compliance))
	for _, rec := range compliance {
		byKey[complianceKey(rec.IsoCode3, rec.Name)] = rec
	}

	merged := make([]domain.Country, 0, len(countries))
	seen := make(map[string]struct{}, len(countries))
	consumed := make(map[string]struct{}, len(compliance))

	for _, bc := range countries {
		if excluded(bc.Name, bc.Continent) {
			continue
		}
		key := complianceKey(bc.IsoCode3, bc.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		c := domain.Country{
			ID:         countryID(bc.ID, bc.IsoCode3, bc.Name),
			Name:       bc.Name,
			IsoCode2:   bc.IsoCode2,
			IsoCode3:   bc.IsoCode3,
			Continent:  bc.Continent,
			Region:     bc.Region,
			EInvoicing: defaultEInvoicing(),
		}
		if rec, ok := byKey[key]; ok {
			consumed[key] = struct{}{}
			c.EInvoicing = normalizeEInvoicing(rec.EInvoicing)
		}
		merged = append(merged, c)
	}

	// Registros de compliance sin país base: se sintetizan con
	// continente Unknown para que el dato no se pierda.
	for _, rec := range compliance {
		key := complianceKey(rec.IsoCode3, rec.Name)
		if _, ok := consumed[key]; ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		consumed[key] = struct{}{}

		continent := rec.Continent
		if strings.TrimSpace(continent) == "" {
			continent = "Unknown"
		}
		merged = append(merged, domain.Country{
			ID:         countryID("", rec.IsoCode3, rec.Name),
			Name:       rec.Name,
			IsoCode2:   rec.IsoCode2,
			IsoCode3:   rec.IsoCode3,
			Continent:  continent,
			Region:     rec.Region,
			EInvoicing: normalizeEInvoicing(rec.EInvoicing),
		})
	}

	// Re-filtro defensivo sobre la lista combinada: los sintetizados
	// también pasan por la exclusión.
	out := merged[:0]
	for _, c := range merged {
		if excluded(c.Name, c.Continent) {
			continue
		}
		out = append(out, c)
	}

	cl := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return cl.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// complianceKey clave de join: ISO3 en mayúsculas, nombre como fallback.
func complianceKey(iso3, name string) string {
	if iso3 != "" {
		return strings.ToUpper(iso3)
	}
	return strings.ToLower(name)
}

// excluded descarta entradas malformadas: sin continente, o con el
// nombre igual al continente ("continente como país").
func excluded(name, continent string) bool {
	if strings.TrimSpace(continent) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(continent))
}

// countryID identificador estable del país merged.
func countryID(id, iso3, name string) string {
	if id != "" {
		return id
	}
	if iso3 != "" {
		return strings.ToLower(iso3)
	}
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// ── Normalización del bloque eInvoicing ──────────────────────────────────────

func defaultEInvoicing() domain.EInvoicing {
	return domain.EInvoicing{
		B2G:         defaultStatus(),
		B2B:         defaultStatus(),
		B2C:         defaultStatus(),
		LastUpdated: time.Now().UTC(),
	}
}

func defaultStatus() domain.ComplianceStatus {
	return domain.ComplianceStatus{
		Status:      domain.StatusNone,
		Formats:     []domain.Format{},
		Legislation: domain.Legislation{Name: ""},
	}
}

// normalizeEInvoicing normaliza cada canal de forma independiente; los
// canales ausentes reciben el default completo.
func normalizeEInvoicing(raw *domain.EInvoicingRecord) domain.EInvoicing {
	out := defaultEInvoicing()
	if raw == nil {
		return out
	}
	out.B2G = normalizeStatus(raw.B2G)
	out.B2B = normalizeStatus(raw.B2B)
	out.B2C = normalizeStatus(raw.B2C)
	if raw.LastUpdated != "" {
		if ts, err := time.Parse(time.RFC3339, raw.LastUpdated); err == nil {
			out.LastUpdated = ts
		}
	}
	return out
}

// normalizeStatus rellena los defaults estructurales de un canal.
// implementationDate ausente se conserva ausente, nunca se inventa.
func normalizeStatus(raw *domain.StatusRecord) domain.ComplianceStatus {
	st := defaultStatus()
	if raw == nil {
		return st
	}
	st.Status = domain.ParseStatus(raw.Status)
	st.ImplementationDate = raw.ImplementationDate
	if raw.Formats != nil {
		st.Formats = raw.Formats
	}
	if raw.Legislation != nil {
		st.Legislation = *raw.Legislation
	}
	return st
}
