package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// MarcaUseCase casos de uso CRUD para marcas.
type MarcaUseCase struct {
	store *store.Store
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(st *store.Store) *MarcaUseCase {
	return &MarcaUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *MarcaUseCase) Create(in dto.CreateMarcaRequest) int {
	items := uc.store.Marcas()
	nuevoID := 1
	for _, m := range items {
		if m.ID >= nuevoID {
			nuevoID = m.ID + 1
		}
	}
	items = append(items, entity.Marca{
		ID:          nuevoID,
		Descripcion: in.Descripcion,
		Estado:      in.Estado,
	})
	uc.store.SetMarcas(items)
	return nuevoID
}

// GetByID obtiene una marca por ID.
func (uc *MarcaUseCase) GetByID(id int) (*entity.Marca, error) {
	for _, m := range uc.store.Marcas() {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *MarcaUseCase) List() []entity.Marca {
	return uc.store.Marcas()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *MarcaUseCase) Update(id int, in dto.UpdateMarcaRequest) {
	items := uc.store.Marcas()
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
		uc.store.SetMarcas(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *MarcaUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Marcas(), func(m entity.Marca) bool {
		return m.ID == id
	})
	uc.store.SetMarcas(items)
}
