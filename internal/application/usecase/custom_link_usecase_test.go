package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// memStore implementación en memoria de repository.Store para tests.
type memStore[T repository.Record] struct {
	items []T
}

func (m *memStore[T]) All() []T { return append([]T{}, m.items...) }

func (m *memStore[T]) Get(id string) (T, bool) {
	for _, it := range m.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (m *memStore[T]) Insert(item T) error {
	m.items = append(m.items, item)
	return nil
}

func (m *memStore[T]) Replace(item T) (bool, error) {
	for i, it := range m.items {
		if it.RecordID() == item.RecordID() {
			m.items[i] = item
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore[T]) Remove(id string) (bool, error) {
	for i, it := range m.items {
		if it.RecordID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeResolver resuelve solo los códigos conocidos.
type fakeResolver struct{ names map[string]string }

func (f *fakeResolver) ResolveName(code string) (string, bool) {
	name, ok := f.names[code]
	return name, ok
}

func newLinkUC() (*usecase.CustomLinkUseCase, *memStore[domain.CustomLink]) {
	store := &memStore[domain.CustomLink]{}
	resolver := &fakeResolver{names: map[string]string{"DEU": "Germany"}}
	return usecase.NewCustomLinkUseCase(store, resolver, logger.Nop()), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Sin identidad de creador el registro nace aprobado (placeholder de auth).
func TestLinkCreate_SinCreador_ApruebaAutomatico(t *testing.T) {
	uc, _ := newLinkUC()
	link, err := uc.Create(dto.CreateLinkRequest{
		CountryCode: "deu",
		Title:       "Portal XRechnung",
		URL:         "https://xeinkauf.de",
	})
	require.NoError(t, err)

	assert.True(t, link.Approved)
	assert.NotEmpty(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())
	assert.Equal(t, "DEU", link.CountryCode, "el código se normaliza a mayúsculas")
	assert.Equal(t, "Germany", link.CountryName)
}

// Con identidad de creador el registro queda pendiente de aprobación.
func TestLinkCreate_ConCreador_QuedaPendiente(t *testing.T) {
	uc, _ := newLinkUC()
	link, err := uc.Create(dto.CreateLinkRequest{
		CountryCode: "DEU",
		Title:       "Guía",
		URL:         "https://example.org/guia",
		CreatedBy:   "usuario@example.org",
	})
	require.NoError(t, err)

	assert.False(t, link.Approved)
	assert.Empty(t, link.ApprovedBy)
	assert.Nil(t, link.ApprovedAt)
	assert.Contains(t, idsOf(uc.ListPending()), link.ID)
}

// Código no resoluble → el código crudo queda como nombre de display.
func TestLinkCreate_PaisNoResoluble_UsaElCodigo(t *testing.T) {
	uc, _ := newLinkUC()
	link, err := uc.Create(dto.CreateLinkRequest{
		CountryCode: "XYZ",
		Title:       "Algo",
		URL:         "https://example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "XYZ", link.CountryName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Approve / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Update aplica solo los campos presentes; id y createdAt no cambian.
func TestLinkUpdate_CamposParciales(t *testing.T) {
	uc, _ := newLinkUC()
	created, err := uc.Create(dto.CreateLinkRequest{
		CountryCode: "DEU", Title: "Original", URL: "https://example.org",
	})
	require.NoError(t, err)

	newTitle := "Actualizado"
	updated, err := uc.Update(created.ID, dto.UpdateLinkRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Actualizado", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.URL, updated.URL, "los campos no enviados no cambian")
}

// Aprobar estampa approvedBy y approvedAt.
func TestLinkApprove_EstampaAprobacion(t *testing.T) {
	uc, _ := newLinkUC()
	created, err := uc.Create(dto.CreateLinkRequest{
		CountryCode: "DEU", Title: "Pendiente", URL: "https://example.org",
		CreatedBy: "usuario@example.org",
	})
	require.NoError(t, err)
	require.False(t, created.Approved)

	approved, err := uc.Approve(created.ID, "admin@example.org")
	require.NoError(t, err)

	assert.True(t, approved.Approved)
	assert.Equal(t, "admin@example.org", approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)
	assert.Empty(t, idsOf(uc.ListPending()))
}

func TestLinkUpdate_NoExiste_ErrNotFound(t *testing.T) {
	uc, _ := newLinkUC()
	title := "x"
	_, err := uc.Update("no-existe", dto.UpdateLinkRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkDelete_NoExiste_ErrNotFound(t *testing.T) {
	uc, store := newLinkUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.items, "la colección no debe cambiar")
}

func TestLinkList_FiltraPorPaisYAprobados(t *testing.T) {
	uc, _ := newLinkUC()
	_, err := uc.Create(dto.CreateLinkRequest{CountryCode: "DEU", Title: "a", URL: "https://a.example"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateLinkRequest{CountryCode: "FRA", Title: "b", URL: "https://b.example"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateLinkRequest{CountryCode: "DEU", Title: "c", URL: "https://c.example", CreatedBy: "u"})
	require.NoError(t, err)

	assert.Len(t, uc.List("deu", false), 2)
	assert.Len(t, uc.List("DEU", true), 1, "el pendiente no sale con approved=true")
	assert.Len(t, uc.List("", false), 3)
}

func idsOf(links []domain.CustomLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.ID)
	}
	return out
}
