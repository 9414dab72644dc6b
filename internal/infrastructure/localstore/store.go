// Package localstore es el almacenamiento degradado: archivos JSON en disco,
// una colección por archivo. Entra en juego cuando PostgreSQL no está
// disponible para que la caja pueda seguir operando. Un solo proceso, un solo
// escritor; el mutex del Store serializa todo acceso.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Nombres de colección: heredan el prefijo pos_ de la primera versión del
// sistema para que un directorio de datos viejo siga siendo legible.
const (
	colMaterials  = "pos_materials"
	colProducts   = "pos_products"
	colSales      = "pos_sales"
	colWastes     = "pos_wastes"
	colAttendance = "pos_attendance"
	colUsers      = "pos_users"
	colSettings   = "pos_settings"
	colMovements  = "pos_stock_movements"
)

// Store acceso a las colecciones JSON bajo un directorio.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepara el directorio de datos y devuelve el store.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localstore: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// readRaw devuelve el contenido del archivo o nil si no existe.
// El caller debe tener el lock.
func (s *Store) readRaw(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", name, err)
	}
	return data, nil
}

// writeRaw escribe el archivo de forma atómica (temp + rename).
// El caller debe tener el lock.
func (s *Store) writeRaw(name string, data []byte) error {
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("localstore: renombrar %s: %w", name, err)
	}
	return nil
}

// load lee una colección completa. Colección inexistente = slice vacío.
func load[T any](s *Store, name string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.readRaw(name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("localstore: decodificar %s: %w", name, err)
	}
	return items, nil
}

// save reemplaza una colección completa.
func save[T any](s *Store, name string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: codificar %s: %w", name, err)
	}
	return s.writeRaw(name, data)
}

// loadObject lee un objeto único (configuración). Devuelve nil si no existe.
func loadObject[T any](s *Store, name string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.readRaw(name)
	if err != nil || data == nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("localstore: decodificar %s: %w", name, err)
	}
	return &v, nil
}

// saveObject reemplaza un objeto único.
func saveObject[T any](s *Store, name string, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: codificar %s: %w", name, err)
	}
	return s.writeRaw(name, data)
}

// backup captura el contenido crudo de las colecciones indicadas. Un valor
// nil significa que el archivo no existía.
func (s *Store) backup(names ...string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := s.readRaw(name)
		if err != nil {
			return nil, err
		}
		snap[name] = data
	}
	return snap, nil
}

// restore devuelve las colecciones al estado capturado por backup.
func (s *Store) restore(snap map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, data := range snap {
		if data == nil {
			if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("localstore: restaurar %s: %w", name, err)
			}
			continue
		}
		if err := s.writeRaw(name, data); err != nil {
			return err
		}
	}
	return nil
}
