package enrichment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/enrichment"
)

func TestExtract_VersionYFecha(t *testing.T) {
	body := `<html><body>
	  <h1>XRechnung</h1>
	  <p>Version: 3.0.2, vigente desde el 2024-02-01.</p>
	</body></html>`

	h := enrichment.Extract(body, "https://example.org/spec")
	assert.Equal(t, "3.0.2", h.Version)
	assert.Equal(t, "2024-02-01", h.EffectiveDate)
	assert.Equal(t, "https://example.org/spec", h.Source)
}

func TestExtract_PrefijoVYMayusculas(t *testing.T) {
	h := enrichment.Extract("VERSION v2.1 publicada", "src")
	assert.Equal(t, "2.1", h.Version)
}

// Sin coincidencias los campos quedan vacíos; nunca hay error.
func TestExtract_SinCoincidencias(t *testing.T) {
	h := enrichment.Extract("<html><body>nada relevante aquí</body></html>", "src")
	assert.Empty(t, h.Version)
	assert.Empty(t, h.EffectiveDate)
	assert.Equal(t, "src", h.Source)
}

// Una fecha fuera de rango de calendario no debe matchear como ISO.
func TestExtract_FechaInvalidaNoMatchea(t *testing.T) {
	h := enrichment.Extract("fecha 2024-19-99 no válida", "src")
	assert.Empty(t, h.EffectiveDate)
}

func TestFetch_AplicaHeuristicas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<p>Version: 1.2, effective 2023-07-01</p>`))
	}))
	defer srv.Close()

	p := enrichment.NewHeuristicProvider(2 * time.Second)
	h, err := p.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "1.2", h.Version)
	assert.Equal(t, "2023-07-01", h.EffectiveDate)
	assert.Equal(t, srv.URL, h.Source)
}

func TestFetch_StatusNoOK_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := enrichment.NewHeuristicProvider(2 * time.Second)
	_, err := p.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}
