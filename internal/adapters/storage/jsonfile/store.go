// Package jsonfile persiste cada colección como un archivo JSON completo
// (pets.json, applications.json, etc.), el mismo formato del directorio
// data/ del front. Cada lectura-modificación-escritura corre bajo un mutex
// por colección: un solo writer por archivo, sin lost updates.
package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Collections conocidas.
const (
	colPets         = "pets.json"
	colApplications = "applications.json"
	colFavorites    = "favorites.json"
	colAppointments = "appointments.json"
	colQuizResults  = "quizResults.json"
	colUsers        = "users.json"
)

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// lock devuelve el mutex de la colección (uno por archivo).
func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// readAll decodifica la colección completa. Archivo ausente => colección vacía.
func readAll[T any](s *Store, name string) ([]T, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}

	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// writeAll reescribe la colección completa vía temp + rename: un write a
// medias nunca deja el archivo truncado.
func writeAll[T any](s *Store, name string, items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// list lee la colección bajo su lock.
func list[T any](s *Store, name string) ([]T, error) {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return readAll[T](s, name)
}

// update ejecuta un read-modify-write serializado por colección.
// fn recibe la colección y devuelve la versión a persistir.
func update[T any](s *Store, name string, fn func(items []T) ([]T, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	items, err := readAll[T](s, name)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return writeAll(s, name, next)
}
