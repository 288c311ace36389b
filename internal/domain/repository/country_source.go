package repository

import "github.com/jhoicas/einvoicing-compliance-api/internal/domain"

// CountrySource define el puerto de lectura de las dos fuentes base (DIP).
// Snapshot devuelve el contenido crudo vigente; el merge se recalcula en
// cada lectura, nunca se persiste la forma combinada.
type CountrySource interface {
	Snapshot() (domain.DataSnapshot, error)
}
