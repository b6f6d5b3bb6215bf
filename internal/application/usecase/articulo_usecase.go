package usecase

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// ArticuloUseCase casos de uso CRUD para artículos. La existencia también la
// ajusta el motor de facturación (application/billing); aquí solo se edita
// directamente como cualquier otro campo.
type ArticuloUseCase struct {
	store *store.Store
	log   zerolog.Logger
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(st *store.Store, log zerolog.Logger) *ArticuloUseCase {
	return &ArticuloUseCase{
		store: st,
		log:   log.With().Str("componente", "articulos").Logger(),
	}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *ArticuloUseCase) Create(in dto.CreateArticuloRequest) int {
	items := uc.store.Articulos()
	nuevoID := 1
	for _, a := range items {
		if a.ID >= nuevoID {
			nuevoID = a.ID + 1
		}
	}
	items = append(items, entity.Articulo{
		ID:          nuevoID,
		Descripcion: in.Descripcion,
		MarcaID:     in.MarcaID,
		Costo:       in.Costo,
		ProveedorID: in.ProveedorID,
		Existencia:  in.Existencia,
		Estado:      in.Estado,
	})
	uc.store.SetArticulos(items)
	return nuevoID
}

// GetByID obtiene un artículo por ID.
func (uc *ArticuloUseCase) GetByID(id int) (*entity.Articulo, error) {
	for _, a := range uc.store.Articulos() {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *ArticuloUseCase) List() []entity.Articulo {
	return uc.store.Articulos()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *ArticuloUseCase) Update(id int, in dto.UpdateArticuloRequest) {
	items := uc.store.Articulos()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if in.Descripcion != nil {
			items[i].Descripcion = *in.Descripcion
		}
		if in.MarcaID != nil {
			items[i].MarcaID = *in.MarcaID
		}
		if in.Costo != nil {
			items[i].Costo = *in.Costo
		}
		if in.ProveedorID != nil {
			items[i].ProveedorID = *in.ProveedorID
		}
		if in.Existencia != nil {
			items[i].Existencia = *in.Existencia
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetArticulos(items)
		return
	}
}

// Delete elimina por ID y persiste. No hay cascada hacia los detalles de
// factura: las líneas que referencien el artículo quedan colgando y solo se
// deja constancia en el log.
func (uc *ArticuloUseCase) Delete(id int) {
	colgando := 0
	for _, d := range uc.store.FacturaArticulos() {
		if d.ArticuloID == id {
			colgando++
		}
	}
	if colgando > 0 {
		uc.log.Warn().Int("articuloId", id).Int("detalles", colgando).
			Msg("artículo eliminado con detalles de factura que lo referencian")
	}
	items := slices.DeleteFunc(uc.store.Articulos(), func(a entity.Articulo) bool {
		return a.ID == id
	})
	uc.store.SetArticulos(items)
}
