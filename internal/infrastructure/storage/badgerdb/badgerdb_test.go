package badgerdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unapec/cafeteria-admin/internal/infrastructure/storage/badgerdb"
	"github.com/unapec/cafeteria-admin/pkg/logger"
)

func TestEnMemoria_IdaYVuelta(t *testing.T) {
	s, err := badgerdb.Open(badgerdb.Config{InMemory: true}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Load("cafeteria_marcas")
	require.NoError(t, err)
	assert.Nil(t, data, "una clave inexistente devuelve (nil, nil)")

	require.NoError(t, s.Save("cafeteria_marcas", []byte(`[{"id":1}]`)))

	data, err = s.Load("cafeteria_marcas")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestPersistente_SobreviveReapertura(t *testing.T) {
	dir := t.TempDir()

	s, err := badgerdb.Open(badgerdb.Config{Path: dir, SyncWrites: true}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save("cafeteria_articulos", []byte(`[{"id":3,"existencia":7}]`)))
	require.NoError(t, s.Close())

	s, err = badgerdb.Open(badgerdb.Config{Path: dir}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Load("cafeteria_articulos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":3,"existencia":7}]`, string(data))
}

func TestPersistente_RequiereDirectorio(t *testing.T) {
	_, err := badgerdb.Open(badgerdb.Config{}, logger.Nop())
	assert.Error(t, err)
}

func TestSave_Sobrescribe(t *testing.T) {
	s, err := badgerdb.Open(badgerdb.Config{InMemory: true}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save("k", []byte(`v1`)))
	require.NoError(t, s.Save("k", []byte(`v2`)))

	data, err := s.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}
