package refresh_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/enrichment"
	"github.com/jhoicas/einvoicing-compliance-api/internal/refresh"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// legStore implementación en memoria del store de legislación.
type legStore struct {
	items []domain.CustomLegislation
}

func (s *legStore) All() []domain.CustomLegislation {
	return append([]domain.CustomLegislation{}, s.items...)
}

func (s *legStore) Get(id string) (domain.CustomLegislation, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CustomLegislation{}, false
}

func (s *legStore) Insert(item domain.CustomLegislation) error {
	s.items = append(s.items, item)
	return nil
}

func (s *legStore) Replace(item domain.CustomLegislation) (bool, error) {
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items[i] = item
			return true, nil
		}
	}
	return false, nil
}

func (s *legStore) Remove(id string) (bool, error) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// stubProvider provider controlable desde el test. Si block no es nil,
// Fetch espera hasta que se cierre.
type stubProvider struct {
	hints enrichment.Hints
	block chan struct{}
}

func (p *stubProvider) Fetch(ctx context.Context, url string) (enrichment.Hints, error) {
	if p.block != nil {
		<-p.block
	}
	h := p.hints
	h.Source = url
	return h, nil
}

func leg(id, url, effectiveDate string) domain.CustomLegislation {
	return domain.CustomLegislation{
		Submission:    domain.Submission{ID: id, Approved: true},
		CountryCode:   "DEU",
		Name:          "Ley " + id,
		URL:           url,
		EffectiveDate: effectiveDate,
	}
}

func waitDone(t *testing.T, r *refresh.Runner) refresh.Progress {
	t.Helper()
	var p refresh.Progress
	require.Eventually(t, func() bool {
		var err error
		p, err = r.Progress()
		return err == nil && p.Status == "done"
	}, 3*time.Second, 10*time.Millisecond, "el refresco debe terminar")
	return p
}

func TestProgress_SinArchivo_Idle(t *testing.T) {
	r := refresh.NewRunner(filepath.Join(t.TempDir(), "progress.json"), &stubProvider{}, &legStore{}, logger.Nop())
	p, err := r.Progress()
	require.NoError(t, err)
	assert.Equal(t, "idle", p.Status)
}

// El refresco rellena effectiveDate solo cuando falta; los valores
// existentes no se pisan.
func TestRunner_RellenaFechaSoloSiFalta(t *testing.T) {
	store := &legStore{items: []domain.CustomLegislation{
		leg("a", "https://example.org/a", ""),
		leg("b", "https://example.org/b", "2020-01-01"),
		leg("c", "", ""), // sin URL: no se visita
	}}
	provider := &stubProvider{hints: enrichment.Hints{EffectiveDate: "2024-02-01"}}
	r := refresh.NewRunner(filepath.Join(t.TempDir(), "progress.json"), provider, store, logger.Nop())

	require.NoError(t, r.Start(context.Background()))
	p := waitDone(t, r)

	assert.Equal(t, 2, p.Total, "solo las entradas con URL cuentan")
	assert.Equal(t, 2, p.Completed)
	assert.Empty(t, p.Error)

	a, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", a.EffectiveDate)

	b, ok := store.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", b.EffectiveDate, "una fecha existente no se pisa")
}

// A lo sumo un refresco a la vez.
func TestRunner_StartConcurrente_ErrRefreshRunning(t *testing.T) {
	block := make(chan struct{})
	store := &legStore{items: []domain.CustomLegislation{
		leg("a", "https://example.org/a", ""),
	}}
	provider := &stubProvider{block: block}
	r := refresh.NewRunner(filepath.Join(t.TempDir(), "progress.json"), provider, store, logger.Nop())

	require.NoError(t, r.Start(context.Background()))
	err := r.Start(context.Background())
	assert.ErrorIs(t, err, domain.ErrRefreshRunning)

	close(block)
	waitDone(t, r)

	// Terminado el primero, un nuevo Start vuelve a ser posible. El flag
	// interno se libera justo después de escribir "done", de ahí el poll.
	provider.block = nil
	require.Eventually(t, func() bool {
		return r.Start(context.Background()) == nil
	}, 3*time.Second, 10*time.Millisecond)
	waitDone(t, r)
}
