// Package cafeteriaadmin arma la aplicación: configuración, logger, almacén
// de blobs, Store y casos de uso. Es el punto de entrada de biblioteca que
// consume la capa de presentación; no hay servidor ni CLI.
package cafeteriaadmin

import (
	"github.com/rs/zerolog"

	"github.com/unapec/cafeteria-admin/internal/application/billing"
	"github.com/unapec/cafeteria-admin/internal/application/usecase"
	"github.com/unapec/cafeteria-admin/internal/infrastructure/storage/badgerdb"
	"github.com/unapec/cafeteria-admin/internal/infrastructure/storage/memory"
	"github.com/unapec/cafeteria-admin/internal/store"
	"github.com/unapec/cafeteria-admin/pkg/config"
	"github.com/unapec/cafeteria-admin/pkg/logger"
)

// App expone la fachada de catálogo y el motor de facturación ya cableados.
// Toda mutación del estado pasa por estos casos de uso; la presentación se
// suscribe a los cambios vía Subscribe.
type App struct {
	Log   zerolog.Logger
	Store *store.Store

	TiposUsuario *usecase.TipoUsuarioUseCase
	Marcas       *usecase.MarcaUseCase
	Campus       *usecase.CampusUseCase
	Proveedores  *usecase.ProveedorUseCase
	Cafeterias   *usecase.CafeteriaUseCase
	Usuarios     *usecase.UsuarioUseCase
	Empleados    *usecase.EmpleadoUseCase
	Articulos    *usecase.ArticuloUseCase
	Facturacion  *billing.FacturacionUseCase

	storage *badgerdb.Storage // nil en modo memoria
}

// New construye la aplicación según cfg. Con Storage.InMemory los datos no
// sobreviven al proceso; de lo contrario se abre BadgerDB en Storage.Path.
// Seeds respalda las colecciones ausentes o corruptas.
func New(cfg *config.Config, seeds store.Seeds) (*App, error) {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Msg("iniciando aplicación")

	var (
		st     store.Storage
		badger *badgerdb.Storage
	)
	if cfg.Storage.InMemory {
		st = memory.New()
	} else {
		b, err := badgerdb.Open(badgerdb.Config{
			Path:       cfg.Storage.Path,
			SyncWrites: cfg.App.Env == "production",
		}, log)
		if err != nil {
			return nil, err
		}
		badger = b
		st = b
	}

	return newApp(st, badger, log, cfg.Inventario, seeds), nil
}

// NewWithStorage construye la aplicación sobre un Storage ya creado; útil en
// pruebas o cuando el caller administra el ciclo de vida del almacén.
func NewWithStorage(st store.Storage, log zerolog.Logger, inv config.InventarioConfig, seeds store.Seeds) *App {
	return newApp(st, nil, log, inv, seeds)
}

func newApp(st store.Storage, badger *badgerdb.Storage, log zerolog.Logger, inv config.InventarioConfig, seeds store.Seeds) *App {
	almacen := store.New(st, log, seeds)
	return &App{
		Log:          log,
		Store:        almacen,
		TiposUsuario: usecase.NewTipoUsuarioUseCase(almacen),
		Marcas:       usecase.NewMarcaUseCase(almacen),
		Campus:       usecase.NewCampusUseCase(almacen),
		Proveedores:  usecase.NewProveedorUseCase(almacen),
		Cafeterias:   usecase.NewCafeteriaUseCase(almacen),
		Usuarios:     usecase.NewUsuarioUseCase(almacen),
		Empleados:    usecase.NewEmpleadoUseCase(almacen),
		Articulos:    usecase.NewArticuloUseCase(almacen, log),
		Facturacion: billing.NewFacturacionUseCase(almacen, log, billing.Config{
			StockStrict:    inv.StockStrict,
			CascadeRestore: inv.CascadeRestore,
		}),
		storage: badger,
	}
}

// Subscribe registra un observador de cambios del almacén (re-render de la
// presentación) y devuelve su cancelación.
func (a *App) Subscribe(fn func(store.Evento)) (cancel func()) {
	return a.Store.Subscribe(fn)
}

// Close cierra el almacén subyacente si la aplicación lo abrió.
func (a *App) Close() error {
	if a.storage != nil {
		return a.storage.Close()
	}
	return nil
}
