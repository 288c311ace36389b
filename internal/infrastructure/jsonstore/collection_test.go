package jsonstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/jsonstore"
)

func newLink(id, code, title string) domain.CustomLink {
	return domain.CustomLink{
		Submission:  domain.Submission{ID: id, Approved: true},
		CountryCode: code,
		Title:       title,
		URL:         "https://example.org/" + id,
	}
}

func TestNewCollection_ArchivoInexistente_ColeccionVacia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	col, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)
	assert.Empty(t, col.All())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el archivo se crea recién en la primera mutación")
}

func TestNewCollection_ArchivoCorrupto_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	_, err := jsonstore.NewCollection[domain.CustomLink](path)
	assert.Error(t, err, "un archivo corrupto nunca se sirve como lista vacía")
}

// Cada mutación reescribe el archivo entero; una instancia nueva sobre el
// mismo path debe ver exactamente el mismo estado.
func TestCollection_MutacionesSobrevivenRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	col, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)

	require.NoError(t, col.Insert(newLink("a", "DEU", "Uno")))
	require.NoError(t, col.Insert(newLink("b", "FRA", "Dos")))

	updated := newLink("a", "DEU", "Uno v2")
	found, err := col.Replace(updated)
	require.NoError(t, err)
	require.True(t, found)

	removed, err := col.Remove("b")
	require.NoError(t, err)
	require.True(t, removed)

	reloaded, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)
	items := reloaded.All()
	require.Len(t, items, 1)
	assert.Equal(t, "Uno v2", items[0].Title)
}

// El archivo en disco debe ser siempre un array JSON válido.
func TestCollection_ArchivoSiempreJSONValido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	col, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)
	require.NoError(t, col.Insert(newLink("a", "DEU", "Uno")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var arr []json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &arr))
	assert.Len(t, arr, 1)
}

// Eliminar un ID inexistente no toca el archivo.
func TestCollection_RemoveInexistente_ArchivoIntacto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	col, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)
	require.NoError(t, col.Insert(newLink("a", "DEU", "Uno")))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	removed, err := col.Remove("no-existe")
	require.NoError(t, err)
	assert.False(t, removed)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCollection_ReplaceInexistente_NoInserta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	col, err := jsonstore.NewCollection[domain.CustomLink](path)
	require.NoError(t, err)

	found, err := col.Replace(newLink("fantasma", "DEU", "x"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, col.All())
}
