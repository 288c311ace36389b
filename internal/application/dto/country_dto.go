package dto

// CountryQuery filtros y paginación del listado de países. Los filtros
// componen con AND; todos son case-insensitive.
type CountryQuery struct {
	Continent string `query:"continent"`
	Region    string `query:"region"`
	Search    string `query:"search"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize aplica defaults y acota los valores de paginación:
// page ≥ 1 (default 1), limit en [1,100] (default 50).
func (q *CountryQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// ContinentCount continente con su número de países (para los filtros
// del frontend).
type ContinentCount struct {
	Continent string `json:"continent"`
	Count     int    `json:"count"`
}
