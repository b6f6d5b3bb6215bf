package store

import (
	"encoding/json"
	"slices"

	"github.com/rs/zerolog"

	"github.com/unapec/cafeteria-admin/internal/domain/entity"
)

// Seeds son las colecciones de respaldo usadas cuando una clave no existe en
// el almacén o su contenido está corrupto. El valor cero deja todo vacío.
type Seeds struct {
	TiposUsuario     []entity.TipoUsuario
	Marcas           []entity.Marca
	Campus           []entity.Campus
	Proveedores      []entity.Proveedor
	Cafeterias       []entity.Cafeteria
	Usuarios         []entity.Usuario
	Empleados        []entity.Empleado
	Articulos        []entity.Articulo
	Facturas         []entity.Factura
	FacturaArticulos []entity.FacturaArticulo
}

// Store mantiene las diez colecciones de entidades en memoria y las persiste
// completas en cada reemplazo (Set*), a través del puerto Storage.
//
// Contrato de un único escritor lógico: toda mutación ocurre de forma
// síncrona dentro de un callback de usuario a la vez, por lo que el almacén
// no hace locking. Un fallo de persistencia se registra y no se propaga: el
// estado en memoria se mantiene (durabilidad de mejor esfuerzo).
type Store struct {
	storage Storage
	log     zerolog.Logger
	bus     *bus

	// pendientes acumula las claves mutadas dentro de un Batch; nil fuera de él.
	pendientes []string

	tiposUsuario     []entity.TipoUsuario
	marcas           []entity.Marca
	campus           []entity.Campus
	proveedores      []entity.Proveedor
	cafeterias       []entity.Cafeteria
	usuarios         []entity.Usuario
	empleados        []entity.Empleado
	articulos        []entity.Articulo
	facturas         []entity.Factura
	facturaArticulos []entity.FacturaArticulo
}

// New construye el almacén cargando las diez colecciones desde storage.
// Una clave ausente o con contenido corrupto cae a la semilla correspondiente.
func New(storage Storage, log zerolog.Logger, seeds Seeds) *Store {
	s := &Store{
		storage: storage,
		log:     log.With().Str("componente", "store").Logger(),
		bus:     newBus(),
	}
	s.tiposUsuario = loadColeccion(s, KeyTiposUsuario, seeds.TiposUsuario)
	s.marcas = loadColeccion(s, KeyMarcas, seeds.Marcas)
	s.campus = loadColeccion(s, KeyCampus, seeds.Campus)
	s.proveedores = loadColeccion(s, KeyProveedores, seeds.Proveedores)
	s.cafeterias = loadColeccion(s, KeyCafeterias, seeds.Cafeterias)
	s.usuarios = loadColeccion(s, KeyUsuarios, seeds.Usuarios)
	s.empleados = loadColeccion(s, KeyEmpleados, seeds.Empleados)
	s.articulos = loadColeccion(s, KeyArticulos, seeds.Articulos)
	s.facturas = loadColeccion(s, KeyFacturas, seeds.Facturas)
	s.facturaArticulos = loadColeccion(s, KeyFacturaArticulos, seeds.FacturaArticulos)
	return s
}

// Subscribe registra un observador de cambios y devuelve su cancelación.
func (s *Store) Subscribe(fn func(Evento)) (cancel func()) {
	return s.bus.subscribe(fn)
}

// Batch ejecuta fn difiriendo la publicación de eventos: cada Set* dentro de
// fn muta y persiste de inmediato, pero los eventos salen juntos al final,
// cuando todas las colecciones del lote ya quedaron consistentes. Así un
// suscriptor nunca observa un estado intermedio de una operación multi-
// colección. Las llamadas anidadas se funden en el lote exterior.
func (s *Store) Batch(fn func()) {
	if s.pendientes != nil {
		fn()
		return
	}
	s.pendientes = []string{}
	fn()
	claves := s.pendientes
	s.pendientes = nil
	for _, key := range claves {
		s.bus.publish(key)
	}
}

func loadColeccion[T any](s *Store, key string, seed []T) []T {
	if seed == nil {
		seed = []T{}
	}
	data, err := s.storage.Load(key)
	if err != nil {
		s.log.Warn().Err(err).Str("coleccion", key).Msg("no se pudo leer la colección; se usa la semilla")
		return slices.Clone(seed)
	}
	if data == nil {
		return slices.Clone(seed)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn().Err(err).Str("coleccion", key).Msg("colección corrupta; se usa la semilla")
		return slices.Clone(seed)
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persist serializa y guarda la colección bajo su clave. Mejor esfuerzo:
// el error se registra y la mutación en memoria queda en pie.
func (s *Store) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("coleccion", key).Msg("no se pudo serializar la colección")
		return
	}
	if err := s.storage.Save(key, data); err != nil {
		s.log.Error().Err(err).Str("coleccion", key).Msg("no se pudo persistir la colección; el estado en memoria se mantiene")
	}
}

func (s *Store) set(key string, v any) {
	s.persist(key, v)
	if s.pendientes != nil {
		if !slices.Contains(s.pendientes, key) {
			s.pendientes = append(s.pendientes, key)
		}
		return
	}
	s.bus.publish(key)
}

// Lecturas: devuelven una copia para que toda mutación pase por los Set*.

func (s *Store) TiposUsuario() []entity.TipoUsuario { return slices.Clone(s.tiposUsuario) }
func (s *Store) Marcas() []entity.Marca             { return slices.Clone(s.marcas) }
func (s *Store) Campus() []entity.Campus            { return slices.Clone(s.campus) }
func (s *Store) Proveedores() []entity.Proveedor    { return slices.Clone(s.proveedores) }
func (s *Store) Cafeterias() []entity.Cafeteria     { return slices.Clone(s.cafeterias) }
func (s *Store) Usuarios() []entity.Usuario         { return slices.Clone(s.usuarios) }
func (s *Store) Empleados() []entity.Empleado       { return slices.Clone(s.empleados) }
func (s *Store) Articulos() []entity.Articulo       { return slices.Clone(s.articulos) }
func (s *Store) Facturas() []entity.Factura         { return slices.Clone(s.facturas) }
func (s *Store) FacturaArticulos() []entity.FacturaArticulo {
	return slices.Clone(s.facturaArticulos)
}

// Escrituras: reemplazan la colección completa, persisten y notifican.

func (s *Store) SetTiposUsuario(items []entity.TipoUsuario) {
	s.tiposUsuario = items
	s.set(KeyTiposUsuario, items)
}

func (s *Store) SetMarcas(items []entity.Marca) {
	s.marcas = items
	s.set(KeyMarcas, items)
}

func (s *Store) SetCampus(items []entity.Campus) {
	s.campus = items
	s.set(KeyCampus, items)
}

func (s *Store) SetProveedores(items []entity.Proveedor) {
	s.proveedores = items
	s.set(KeyProveedores, items)
}

func (s *Store) SetCafeterias(items []entity.Cafeteria) {
	s.cafeterias = items
	s.set(KeyCafeterias, items)
}

func (s *Store) SetUsuarios(items []entity.Usuario) {
	s.usuarios = items
	s.set(KeyUsuarios, items)
}

func (s *Store) SetEmpleados(items []entity.Empleado) {
	s.empleados = items
	s.set(KeyEmpleados, items)
}

func (s *Store) SetArticulos(items []entity.Articulo) {
	s.articulos = items
	s.set(KeyArticulos, items)
}

func (s *Store) SetFacturas(items []entity.Factura) {
	s.facturas = items
	s.set(KeyFacturas, items)
}

func (s *Store) SetFacturaArticulos(items []entity.FacturaArticulo) {
	s.facturaArticulos = items
	s.set(KeyFacturaArticulos, items)
}
