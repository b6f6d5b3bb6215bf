// Package badgerdb adapta BadgerDB como almacén de blobs por clave
// (implementa store.Storage). Una colección serializada por clave; el modo
// en memoria sirve para pruebas y sesiones efímeras.
package badgerdb

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Config opciones del almacén.
type Config struct {
	Path       string // directorio de datos; ignorado si InMemory
	InMemory   bool
	SyncWrites bool // escrituras síncronas (durabilidad); apagado en pruebas
}

// Storage envuelve una instancia de BadgerDB.
type Storage struct {
	db *badger.DB
}

// Open abre (o crea) la base en cfg.Path, o en memoria si cfg.InMemory.
// El caller debe llamar Close al terminar.
func Open(cfg Config, log zerolog.Logger) (*Storage, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("se requiere un directorio de datos para el almacén persistente")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("crear directorio de datos %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithLogger(badgerLogger{log: log.With().Str("componente", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("abrir badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Load devuelve el blob de la clave, o (nil, nil) si no existe.
func (s *Storage) Load(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return data, nil
}

// Save almacena el blob bajo la clave.
func (s *Storage) Save(key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("guardar clave %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *Storage) Close() error {
	return s.db.Close()
}

// badgerLogger adapta zerolog a la interfaz de logging de BadgerDB.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...) // el detalle interno de badger baja a debug
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}
