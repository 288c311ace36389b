package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// Dataset fuente de países y compliance respaldada por dos archivos JSON
// de solo lectura. La carga inicial es estricta (el servidor no arranca
// con datos corruptos); una recarga fallida tras un cambio en disco
// conserva el snapshot anterior y deja traza en el log.
type Dataset struct {
	mu             sync.RWMutex
	countriesPath  string
	compliancePath string
	snap           domain.DataSnapshot
	log            *logger.Logger
	watcher        *fsnotify.Watcher
}

// NewDataset carga ambos archivos y falla rápido si alguno no se puede
// leer o parsear (domain.ErrDataLoad).
func NewDataset(countriesPath, compliancePath string, log *logger.Logger) (*Dataset, error) {
	d := &Dataset{
		countriesPath:  countriesPath,
		compliancePath: compliancePath,
		log:            log,
	}
	snap, err := d.load()
	if err != nil {
		return nil, err
	}
	d.snap = snap
	return d, nil
}

// Snapshot devuelve el contenido crudo vigente. Los slices no se copian:
// el merge los trata como entrada inmutable.
func (d *Dataset) Snapshot() (domain.DataSnapshot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap, nil
}

// Watch observa los dos archivos con fsnotify y recarga al detectar
// escrituras (p. ej. del refresher). Debe cerrarse con Close.
func (d *Dataset) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	d.watcher = w
	// Se observan los directorios: los editores y el rename atómico
	// reemplazan el inode del archivo y un watch directo se perdería.
	dirs := map[string]struct{}{
		filepath.Dir(d.countriesPath):  {},
		filepath.Dir(d.compliancePath): {},
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return err
		}
	}
	go d.watchLoop()
	return nil
}

// Close detiene el watcher si estaba activo.
func (d *Dataset) Close() error {
	if d.watcher != nil {
		return d.watcher.Close()
	}
	return nil
}

func (d *Dataset) watchLoop() {
	for {
		select {
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != d.countriesPath && ev.Name != d.compliancePath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			d.reload(ev.Name)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.log.Warn().Err(err).Msg("watcher de datos base")
		}
	}
}

// reload reintenta la carga completa; ante error conserva el snapshot previo.
func (d *Dataset) reload(changed string) {
	snap, err := d.load()
	if err != nil {
		d.log.Warn().Err(err).Str("archivo", changed).
			Msg("recarga de datos base fallida, se conserva el snapshot anterior")
		return
	}
	d.mu.Lock()
	d.snap = snap
	d.mu.Unlock()
	d.log.Info().Str("archivo", changed).
		Int("paises", len(snap.Countries)).
		Int("compliance", len(snap.Compliance)).
		Msg("datos base recargados")
}

func (d *Dataset) load() (domain.DataSnapshot, error) {
	var snap domain.DataSnapshot
	if err := readJSONArray(d.countriesPath, &snap.Countries); err != nil {
		return snap, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}
	if err := readJSONArray(d.compliancePath, &snap.Compliance); err != nil {
		return snap, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}
	return snap, nil
}

func readJSONArray(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsear %s: %v", path, err)
	}
	return nil
}
