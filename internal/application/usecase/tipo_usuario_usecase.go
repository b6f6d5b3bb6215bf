// Package usecase contiene la fachada CRUD del catálogo: un caso de uso por
// entidad, operando sobre una sola colección del almacén y sin efectos
// cruzados. Las facturas y sus detalles viven en application/billing.
package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// TipoUsuarioUseCase casos de uso CRUD para tipos de usuario.
type TipoUsuarioUseCase struct {
	store *store.Store
}

// NewTipoUsuarioUseCase construye el caso de uso.
func NewTipoUsuarioUseCase(st *store.Store) *TipoUsuarioUseCase {
	return &TipoUsuarioUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *TipoUsuarioUseCase) Create(in dto.CreateTipoUsuarioRequest) int {
	items := uc.store.TiposUsuario()
	nuevoID := 1
	for _, t := range items {
		if t.ID >= nuevoID {
			nuevoID = t.ID + 1
		}
	}
	items = append(items, entity.TipoUsuario{
		ID:          nuevoID,
		Descripcion: in.Descripcion,
		Estado:      in.Estado,
	})
	uc.store.SetTiposUsuario(items)
	return nuevoID
}

// GetByID obtiene un tipo de usuario por ID.
func (uc *TipoUsuarioUseCase) GetByID(id int) (*entity.TipoUsuario, error) {
	for _, t := range uc.store.TiposUsuario() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *TipoUsuarioUseCase) List() []entity.TipoUsuario {
	return uc.store.TiposUsuario()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *TipoUsuarioUseCase) Update(id int, in dto.UpdateTipoUsuarioRequest) {
	items := uc.store.TiposUsuario()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if in.Descripcion != nil {
			items[i].Descripcion = *in.Descripcion
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetTiposUsuario(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *TipoUsuarioUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.TiposUsuario(), func(t entity.TipoUsuario) bool {
		return t.ID == id
	})
	uc.store.SetTiposUsuario(items)
}
