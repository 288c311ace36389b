// Package jsonstore implementa la persistencia en archivos JSON planos:
// las dos fuentes base de países (solo lectura, con recarga en caliente)
// y las colecciones custom (reescritura completa y atómica por mutación).
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
)

// Collection colección de registros respaldada por un archivo JSON.
// Se carga completa en memoria al construirse y cada mutación reescribe
// el archivo entero: escritura a un temporal en el mismo directorio y
// rename sobre el original, para que un crash nunca deje el archivo a medias.
// El mutex serializa los read-modify-write dentro del proceso.
type Collection[T repository.Record] struct {
	mu    sync.Mutex
	path  string
	items []T
}

// NewCollection carga la colección desde path. Un archivo inexistente
// arranca la colección vacía (se crea en la primera mutación); un archivo
// corrupto es un error, nunca se sirve silenciosamente una lista vacía.
func NewCollection[T repository.Record](path string) (*Collection[T], error) {
	c := &Collection[T]{path: path, items: []T{}}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &c.items); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", path, err)
	}
	return c, nil
}

// All devuelve una copia de todos los registros.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get busca un registro por ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert agrega un registro y reescribe el archivo.
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	if err := c.flush(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// Replace sustituye el registro con el mismo ID. Devuelve false si no existe.
func (c *Collection[T]) Replace(item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.RecordID() == item.RecordID() {
			prev := c.items[i]
			c.items[i] = item
			if err := c.flush(); err != nil {
				c.items[i] = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Remove elimina por ID. Devuelve si el registro existía; si no existía
// el archivo queda intacto.
func (c *Collection[T]) Remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.RecordID() == id {
			prev := c.items
			c.items = append(append([]T{}, c.items[:i]...), c.items[i+1:]...)
			if err := c.flush(); err != nil {
				c.items = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// flush reescribe el archivo completo de forma atómica (temp + rename).
// Llamar con el mutex tomado.
func (c *Collection[T]) flush() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", c.path, err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
