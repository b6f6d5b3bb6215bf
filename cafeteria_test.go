package cafeteriaadmin_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cafeteriaadmin "github.com/unapec/cafeteria-admin"
	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/infrastructure/storage/memory"
	"github.com/unapec/cafeteria-admin/internal/store"
	"github.com/unapec/cafeteria-admin/pkg/config"
	"github.com/unapec/cafeteria-admin/pkg/logger"
)

// Flujo completo sobre la aplicación armada: catálogo, venta y notificaciones,
// con las colecciones persistiéndose bajo sus claves en el almacén.
func TestApp_FlujoDeVenta(t *testing.T) {
	mem := memory.New()
	app := cafeteriaadmin.NewWithStorage(mem, logger.Nop(), config.InventarioConfig{}, store.Seeds{})
	defer app.Close()

	colecciones := map[string]int{}
	defer app.Subscribe(func(ev store.Evento) { colecciones[ev.Coleccion]++ })()

	// Catálogo mínimo.
	marcaID := app.Marcas.Create(dto.CreateMarcaRequest{Descripcion: "Rica", Estado: true})
	provID := app.Proveedores.Create(dto.CreateProveedorRequest{
		NombreComercial: "Distribuidora del Este",
		RNC:             "130-12345-6",
		FechaRegistro:   "2023-10-01",
		Estado:          true,
	})
	artID := app.Articulos.Create(dto.CreateArticuloRequest{
		Descripcion: "Jugo de naranja",
		MarcaID:     marcaID,
		Costo:       decimal.NewFromFloat(35.00),
		ProveedorID: provID,
		Existencia:  24,
		Estado:      true,
	})

	tipoID := app.TiposUsuario.Create(dto.CreateTipoUsuarioRequest{Descripcion: "Estudiante", Estado: true})
	usuarioID := app.Usuarios.Create(dto.CreateUsuarioRequest{
		Nombre: "Ana Gómez", Cedula: "001-1234567-8", TipoUsuarioID: tipoID,
		LimiteCredito: decimal.NewFromInt(1500), FechaRegistro: "2024-01-15", Estado: true,
	})
	empleadoID := app.Empleados.Create(dto.CreateEmpleadoRequest{
		Nombre: "Luis Marte", Cedula: "002-7654321-0", TandaLabor: "matutina",
		PorcientoComision: decimal.NewFromInt(5), FechaIngreso: "2022-06-01", Estado: true,
	})

	// Venta: factura con una línea de 3 unidades.
	facturaID := app.Facturacion.CreateFactura(dto.CreateFacturaRequest{
		EmpleadoID: empleadoID, UsuarioID: usuarioID,
		FechaVenta: "2024-03-01", Comentario: "desayuno", Estado: true,
	})
	_, err := app.Facturacion.CreateFacturaArticulo(dto.CreateFacturaArticuloRequest{
		FacturaID: facturaID, ArticuloID: artID,
		Monto: decimal.NewFromInt(105), UnidadesVendidas: 3,
	})
	require.NoError(t, err)

	art, err := app.Articulos.GetByID(artID)
	require.NoError(t, err)
	assert.Equal(t, 21, art.Existencia)

	// Cada colección mutada notificó y quedó persistida bajo su clave.
	assert.Positive(t, colecciones[store.KeyArticulos])
	assert.Positive(t, colecciones[store.KeyFacturas])
	assert.Positive(t, colecciones[store.KeyFacturaArticulos])

	data, err := mem.Load(store.KeyFacturaArticulos)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unidadesVendidas":3`)

	// Un segundo arranque sobre el mismo almacén ve el mismo estado.
	app2 := cafeteriaadmin.NewWithStorage(mem, logger.Nop(), config.InventarioConfig{}, store.Seeds{})
	defer app2.Close()
	art, err = app2.Articulos.GetByID(artID)
	require.NoError(t, err)
	assert.Equal(t, 21, art.Existencia)
	assert.Len(t, app2.Store.FacturaArticulos(), 1)
}
