// Package enrichment aísla el scraping heurístico detrás de una interfaz
// estrecha. Todos los campos extraídos son opcionales: el merge de países
// nunca depende de ellos.
package enrichment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// Hints campos posiblemente ausentes extraídos de una página. Un campo
// vacío significa "no encontrado", nunca un error.
type Hints struct {
	Version       string `json:"version,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	Source        string `json:"source,omitempty"`
}

// Provider obtiene hints de enriquecimiento para una URL.
type Provider interface {
	Fetch(ctx context.Context, url string) (Hints, error)
}

// Heurísticas de extracción. Best effort: un falso negativo es aceptable,
// un crash no.
var (
	reVersion = regexp.MustCompile(`(?i)version\s*[:\s]\s*v?([0-9]+(?:\.[0-9]+){0,3})`)
	reISODate = regexp.MustCompile(`\b(20\d{2}-[01]\d-[0-3]\d)\b`)
)

// HeuristicProvider implementación por regex sobre el HTML crudo.
type HeuristicProvider struct {
	client  *http.Client
	maxBody int64
}

// NewHeuristicProvider construye el provider con timeout y tope de lectura.
func NewHeuristicProvider(timeout time.Duration) *HeuristicProvider {
	return &HeuristicProvider{
		client:  &http.Client{Timeout: timeout},
		maxBody: 1 << 20, // 1 MiB: suficiente para extraer versión y fecha
	}
}

// Fetch descarga la página y aplica las heurísticas.
func (p *HeuristicProvider) Fetch(ctx context.Context, url string) (Hints, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Hints{}, err
	}
	req.Header.Set("User-Agent", "compliance-atlas-refresher/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return Hints{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Hints{}, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody))
	if err != nil {
		return Hints{}, err
	}
	return Extract(string(body), url), nil
}

// Extract aplica las heurísticas sobre un cuerpo ya descargado.
// Separado de Fetch para poder testearlo sin red.
func Extract(body, source string) Hints {
	h := Hints{Source: source}
	if m := reVersion.FindStringSubmatch(body); m != nil {
		h.Version = m[1]
	}
	if m := reISODate.FindStringSubmatch(body); m != nil {
		h.EffectiveDate = m[1]
	}
	return h
}
