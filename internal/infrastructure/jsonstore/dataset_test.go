package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/jsonstore"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

const countriesJSON = `[
  {"name": "Germany", "isoCode2": "DE", "isoCode3": "DEU", "continent": "Europe"}
]`

const complianceJSON = `[
  {"isoCode3": "DEU", "name": "Germany"}
]`

func writeDataFiles(t *testing.T, countries, compliance string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cPath := filepath.Join(dir, "countries.json")
	xPath := filepath.Join(dir, "compliance-data.json")
	require.NoError(t, os.WriteFile(cPath, []byte(countries), 0o644))
	require.NoError(t, os.WriteFile(xPath, []byte(compliance), 0o644))
	return cPath, xPath
}

func TestNewDataset_CargaInicial(t *testing.T) {
	cPath, xPath := writeDataFiles(t, countriesJSON, complianceJSON)
	ds, err := jsonstore.NewDataset(cPath, xPath, logger.Nop())
	require.NoError(t, err)
	defer ds.Close()

	snap, err := ds.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Countries, 1)
	assert.Equal(t, "DEU", snap.Countries[0].IsoCode3)
	require.Len(t, snap.Compliance, 1)
}

// El servidor no arranca con datos corruptos o ausentes.
func TestNewDataset_FallaRapidoConDatosInvalidos(t *testing.T) {
	cPath, xPath := writeDataFiles(t, "{corrupto", complianceJSON)
	_, err := jsonstore.NewDataset(cPath, xPath, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrDataLoad)

	dir := t.TempDir()
	_, err = jsonstore.NewDataset(
		filepath.Join(dir, "no-existe.json"),
		xPath, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrDataLoad)

	cPath2, xPath2 := writeDataFiles(t, countriesJSON, "[{]")
	_, err = jsonstore.NewDataset(cPath2, xPath2, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

// Una escritura válida sobre un archivo observado reemplaza el snapshot.
func TestDataset_RecargaTrasEscritura(t *testing.T) {
	cPath, xPath := writeDataFiles(t, countriesJSON, complianceJSON)
	ds, err := jsonstore.NewDataset(cPath, xPath, logger.Nop())
	require.NoError(t, err)
	defer ds.Close()
	require.NoError(t, ds.Watch())

	updated := `[
  {"name": "Germany", "isoCode2": "DE", "isoCode3": "DEU", "continent": "Europe"},
  {"name": "France", "isoCode2": "FR", "isoCode3": "FRA", "continent": "Europe"}
]`
	require.NoError(t, os.WriteFile(cPath, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		snap, err := ds.Snapshot()
		return err == nil && len(snap.Countries) == 2
	}, 3*time.Second, 20*time.Millisecond, "el watcher debe recargar el archivo")
}

// Una recarga fallida conserva el snapshot anterior en vez de vaciarlo.
func TestDataset_RecargaFallidaConservaSnapshot(t *testing.T) {
	cPath, xPath := writeDataFiles(t, countriesJSON, complianceJSON)
	ds, err := jsonstore.NewDataset(cPath, xPath, logger.Nop())
	require.NoError(t, err)
	defer ds.Close()
	require.NoError(t, ds.Watch())

	require.NoError(t, os.WriteFile(cPath, []byte("{corrupto"), 0o644))

	// No hay señal de "recarga intentada"; se da un margen razonable y se
	// verifica que el snapshot sigue siendo el original.
	time.Sleep(300 * time.Millisecond)
	snap, err := ds.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Countries, 1)
	assert.Equal(t, "Germany", snap.Countries[0].Name)
}
