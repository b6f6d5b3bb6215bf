// Package memory implementa store.Storage sobre un mapa; sin durabilidad.
package memory

import "slices"

// Storage almacén de blobs en memoria, útil en pruebas.
type Storage struct {
	datos map[string][]byte
}

// New crea un almacén vacío.
func New() *Storage {
	return &Storage{datos: make(map[string][]byte)}
}

// Load devuelve el blob de la clave, o (nil, nil) si no existe.
func (s *Storage) Load(key string) ([]byte, error) {
	data, ok := s.datos[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

// Save almacena una copia del blob bajo la clave.
func (s *Storage) Save(key string, data []byte) error {
	s.datos[key] = slices.Clone(data)
	return nil
}
