package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/infrastructure/storage/memory"
	"github.com/unapec/cafeteria-admin/internal/store"
	"github.com/unapec/cafeteria-admin/pkg/logger"
)

func TestNew_CargaColeccionesPersistidas(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Save(store.KeyMarcas, []byte(`[{"id":7,"descripcion":"Rica","estado":true}]`)))

	st := store.New(mem, logger.Nop(), store.Seeds{
		Marcas: []entity.Marca{{ID: 1, Descripcion: "semilla", Estado: true}},
	})

	marcas := st.Marcas()
	require.Len(t, marcas, 1, "el dato persistido tiene prioridad sobre la semilla")
	assert.Equal(t, 7, marcas[0].ID)
	assert.Equal(t, "Rica", marcas[0].Descripcion)
}

func TestNew_SemillaSiClaveAusente(t *testing.T) {
	st := store.New(memory.New(), logger.Nop(), store.Seeds{
		Campus: []entity.Campus{{ID: 1, Descripcion: "Campus Principal", Estado: true}},
	})

	campus := st.Campus()
	require.Len(t, campus, 1)
	assert.Equal(t, "Campus Principal", campus[0].Descripcion)
	assert.Empty(t, st.Marcas(), "sin semilla ni dato la colección queda vacía")
}

func TestNew_SemillaSiContenidoCorrupto(t *testing.T) {
	mem := memory.New()
	require.NoError(t, mem.Save(store.KeyArticulos, []byte(`{esto no es json válido`)))

	st := store.New(mem, logger.Nop(), store.Seeds{
		Articulos: []entity.Articulo{{ID: 1, Descripcion: "semilla", Existencia: 9, Estado: true}},
	})

	articulos := st.Articulos()
	require.Len(t, articulos, 1, "contenido corrupto cae a la semilla")
	assert.Equal(t, 9, articulos[0].Existencia)
}

func TestSet_PersisteYNotifica(t *testing.T) {
	mem := memory.New()
	st := store.New(mem, logger.Nop(), store.Seeds{})

	var eventos []store.Evento
	cancel := st.Subscribe(func(ev store.Evento) { eventos = append(eventos, ev) })
	defer cancel()

	st.SetMarcas([]entity.Marca{{ID: 1, Descripcion: "Rica", Estado: true}})

	require.Len(t, eventos, 1)
	assert.Equal(t, store.KeyMarcas, eventos[0].Coleccion)
	assert.NotEmpty(t, eventos[0].ID)

	data, err := mem.Load(store.KeyMarcas)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"descripcion":"Rica","estado":true}]`, string(data),
		"cada Set serializa la colección completa bajo su clave")
}

func TestBatch_DifiereEventosHastaElFinal(t *testing.T) {
	mem := memory.New()
	st := store.New(mem, logger.Nop(), store.Seeds{})

	var eventos []store.Evento
	duranteLote := 0
	cancel := st.Subscribe(func(ev store.Evento) { eventos = append(eventos, ev) })
	defer cancel()

	st.Batch(func() {
		st.SetMarcas([]entity.Marca{{ID: 1, Descripcion: "Rica", Estado: true}})
		st.SetCampus([]entity.Campus{{ID: 1, Descripcion: "Principal", Estado: true}})
		duranteLote = len(eventos)
	})

	assert.Zero(t, duranteLote, "dentro del lote no debe publicarse ningún evento")
	require.Len(t, eventos, 2)
	assert.Equal(t, store.KeyMarcas, eventos[0].Coleccion)
	assert.Equal(t, store.KeyCampus, eventos[1].Coleccion)

	// La persistencia no se difiere: cada Set guarda de inmediato.
	data, err := mem.Load(store.KeyMarcas)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBatch_AnidadoSeFundeEnElExterior(t *testing.T) {
	st := store.New(memory.New(), logger.Nop(), store.Seeds{})

	var eventos []store.Evento
	cancel := st.Subscribe(func(ev store.Evento) { eventos = append(eventos, ev) })
	defer cancel()

	st.Batch(func() {
		st.SetMarcas([]entity.Marca{{ID: 1, Descripcion: "Rica", Estado: true}})
		st.Batch(func() {
			st.SetCampus([]entity.Campus{{ID: 1, Descripcion: "Principal", Estado: true}})
		})
		assert.Empty(t, eventos, "el lote anidado no publica por su cuenta")
	})

	require.Len(t, eventos, 2)
}

func TestSubscribe_Cancelacion(t *testing.T) {
	st := store.New(memory.New(), logger.Nop(), store.Seeds{})

	llamadas := 0
	cancel := st.Subscribe(func(store.Evento) { llamadas++ })

	st.SetCampus([]entity.Campus{{ID: 1, Descripcion: "Principal", Estado: true}})
	cancel()
	st.SetCampus(nil)

	assert.Equal(t, 1, llamadas, "tras cancelar no deben llegar más eventos")
}

// storageFallido falla todos los Save; Load siempre vacío.
type storageFallido struct{}

func (storageFallido) Load(string) ([]byte, error) { return nil, nil }
func (storageFallido) Save(string, []byte) error   { return errors.New("disco lleno") }

func TestSet_FalloDePersistencia_EstadoEnMemoriaSeMantiene(t *testing.T) {
	st := store.New(storageFallido{}, logger.Nop(), store.Seeds{})

	notificado := false
	defer st.Subscribe(func(store.Evento) { notificado = true })()

	st.SetMarcas([]entity.Marca{{ID: 1, Descripcion: "Rica", Estado: true}})

	// Mejor esfuerzo: el error se registra, la mutación en memoria queda en
	// pie y el suscriptor igual se entera del cambio.
	marcas := st.Marcas()
	require.Len(t, marcas, 1)
	assert.Equal(t, "Rica", marcas[0].Descripcion)
	assert.True(t, notificado)
}

func TestLecturas_DevuelvenCopia(t *testing.T) {
	st := store.New(memory.New(), logger.Nop(), store.Seeds{
		Marcas: []entity.Marca{{ID: 1, Descripcion: "Rica", Estado: true}},
	})

	marcas := st.Marcas()
	marcas[0].Descripcion = "mutada por fuera"

	assert.Equal(t, "Rica", st.Marcas()[0].Descripcion,
		"mutar la copia devuelta no afecta el estado del almacén")
}
