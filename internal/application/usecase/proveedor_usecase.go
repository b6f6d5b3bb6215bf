package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	store *store.Store
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(st *store.Store) *ProveedorUseCase {
	return &ProveedorUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) int {
	items := uc.store.Proveedores()
	nuevoID := 1
	for _, p := range items {
		if p.ID >= nuevoID {
			nuevoID = p.ID + 1
		}
	}
	items = append(items, entity.Proveedor{
		ID:              nuevoID,
		NombreComercial: in.NombreComercial,
		RNC:             in.RNC,
		FechaRegistro:   in.FechaRegistro,
		Estado:          in.Estado,
	})
	uc.store.SetProveedores(items)
	return nuevoID
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id int) (*entity.Proveedor, error) {
	for _, p := range uc.store.Proveedores() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *ProveedorUseCase) List() []entity.Proveedor {
	return uc.store.Proveedores()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *ProveedorUseCase) Update(id int, in dto.UpdateProveedorRequest) {
	items := uc.store.Proveedores()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if in.NombreComercial != nil {
			items[i].NombreComercial = *in.NombreComercial
		}
		if in.RNC != nil {
			items[i].RNC = *in.RNC
		}
		if in.FechaRegistro != nil {
			items[i].FechaRegistro = *in.FechaRegistro
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetProveedores(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *ProveedorUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Proveedores(), func(p entity.Proveedor) bool {
		return p.ID == id
	})
	uc.store.SetProveedores(items)
}
