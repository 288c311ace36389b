package usecase

import (
	"sort"
	"strings"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
)

// CountryUseCase consultas de solo lectura sobre la lista merged de
// países. La lista se recalcula en cada lectura desde el snapshot crudo.
type CountryUseCase struct {
	source repository.CountrySource
}

// NewCountryUseCase construye el caso de uso.
func NewCountryUseCase(source repository.CountrySource) *CountryUseCase {
	return &CountryUseCase{source: source}
}

// List devuelve la página pedida y el total filtrado sin paginar.
// Una página fuera de rango devuelve slice vacío, no error.
func (uc *CountryUseCase) List(q dto.CountryQuery) ([]domain.Country, int, error) {
	q.Normalize()
	merged, err := uc.merged()
	if err != nil {
		return nil, 0, err
	}
	filtered := filterCountries(merged, q)
	total := len(filtered)

	start := (q.Page - 1) * q.Limit
	if start >= total {
		return []domain.Country{}, total, nil
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

// GetByCode busca un país por su código ISO3 (case-insensitive).
func (uc *CountryUseCase) GetByCode(code string) (*domain.Country, error) {
	merged, err := uc.merged()
	if err != nil {
		return nil, err
	}
	for i := range merged {
		if strings.EqualFold(merged[i].IsoCode3, code) {
			return &merged[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Continents devuelve los continentes distintos con su conteo de países,
// ordenados alfabéticamente.
func (uc *CountryUseCase) Continents() ([]dto.ContinentCount, error) {
	merged, err := uc.merged()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, c := range merged {
		counts[c.Continent]++
	}
	out := make([]dto.ContinentCount, 0, len(counts))
	for continent, n := range counts {
		out = append(out, dto.ContinentCount{Continent: continent, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Continent < out[j].Continent })
	return out, nil
}

// ResolveName resuelve el nombre legible de un país desde la lista base.
// Se usa al guardar registros custom; la falla no es un error.
func (uc *CountryUseCase) ResolveName(code string) (string, bool) {
	snap, err := uc.source.Snapshot()
	if err != nil {
		return "", false
	}
	for _, bc := range snap.Countries {
		if strings.EqualFold(bc.IsoCode3, code) {
			return bc.Name, true
		}
	}
	return "", false
}

func (uc *CountryUseCase) merged() ([]domain.Country, error) {
	snap, err := uc.source.Snapshot()
	if err != nil {
		return nil, err
	}
	return MergeCountries(snap.Countries, snap.Compliance), nil
}

// filterCountries aplica los filtros con AND; todos case-insensitive.
func filterCountries(list []domain.Country, q dto.CountryQuery) []domain.Country {
	out := make([]domain.Country, 0, len(list))
	search := strings.ToLower(q.Search)
	region := strings.ToLower(q.Region)
	for _, c := range list {
		if q.Continent != "" && !strings.EqualFold(c.Continent, q.Continent) {
			continue
		}
		// Países sin región nunca matchean el filtro de región.
		if region != "" && (c.Region == "" || !strings.Contains(strings.ToLower(c.Region), region)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.IsoCode2), search) &&
			!strings.Contains(strings.ToLower(c.IsoCode3), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}
