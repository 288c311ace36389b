// Package refresh implementa el refresco best-effort de datos: recorre
// las URLs de la legislación custom, extrae hints con el provider de
// enriquecimiento y deja el avance en un archivo de estado JSON que el
// cliente sondea.
package refresh

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/enrichment"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// Progress estado del refresco tal como se persiste en disco.
type Progress struct {
	Status    string    `json:"status"` // idle | running | done | failed
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Current   string    `json:"current,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Runner ejecuta a lo sumo un refresco a la vez (fire-and-forget).
type Runner struct {
	mu           sync.Mutex
	running      bool
	progressPath string
	provider     enrichment.Provider
	legislation  repository.Store[domain.CustomLegislation]
	log          *logger.Logger
}

// NewRunner construye el runner.
func NewRunner(progressPath string, provider enrichment.Provider, legislation repository.Store[domain.CustomLegislation], log *logger.Logger) *Runner {
	return &Runner{
		progressPath: progressPath,
		provider:     provider,
		legislation:  legislation,
		log:          log,
	}
}

// Start lanza el refresco en background. domain.ErrRefreshRunning si ya
// hay uno en curso.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return domain.ErrRefreshRunning
	}
	r.running = true
	go r.run(ctx)
	return nil
}

// Progress lee el archivo de estado. Si nunca corrió un refresco,
// devuelve el estado idle.
func (r *Runner) Progress() (Progress, error) {
	raw, err := os.ReadFile(r.progressPath)
	if os.IsNotExist(err) {
		return Progress{Status: "idle", UpdatedAt: time.Now().UTC()}, nil
	}
	if err != nil {
		return Progress{}, err
	}
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return Progress{}, err
	}
	return p, nil
}

func (r *Runner) run(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	pending := []domain.CustomLegislation{}
	for _, leg := range r.legislation.All() {
		if leg.URL != "" {
			pending = append(pending, leg)
		}
	}

	p := Progress{Status: "running", Total: len(pending)}
	r.writeProgress(&p)

	for _, leg := range pending {
		p.Current = leg.Name
		r.writeProgress(&p)

		hints, err := r.provider.Fetch(ctx, leg.URL)
		if err != nil {
			// Best effort: una URL caída no aborta el refresco completo.
			r.log.Warn().Err(err).Str("url", leg.URL).Msg("enriquecimiento fallido")
		} else if hints.EffectiveDate != "" && leg.EffectiveDate == "" {
			leg.EffectiveDate = hints.EffectiveDate
			leg.UpdatedAt = time.Now().UTC()
			if _, err := r.legislation.Replace(leg); err != nil {
				r.log.Error().Err(err).Str("id", leg.ID).Msg("persistir enriquecimiento")
			}
		}

		p.Completed++
		r.writeProgress(&p)
	}

	p.Status = "done"
	p.Current = ""
	r.writeProgress(&p)
	r.log.Info().Int("total", p.Total).Msg("refresco terminado")
}

// writeProgress persiste el estado; un fallo aquí solo se loguea, el
// refresco continúa.
func (r *Runner) writeProgress(p *Progress) {
	p.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		r.log.Error().Err(err).Msg("serializar progreso")
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.progressPath), 0o755); err != nil {
		r.log.Error().Err(err).Msg("crear directorio de progreso")
		return
	}
	if err := os.WriteFile(r.progressPath, data, 0o644); err != nil {
		r.log.Error().Err(err).Msg("escribir progreso")
	}
}
