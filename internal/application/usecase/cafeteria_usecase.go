package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// CafeteriaUseCase casos de uso CRUD para cafeterías.
// CampusID no se valida aquí: los formularios listan solo campus activos.
type CafeteriaUseCase struct {
	store *store.Store
}

// NewCafeteriaUseCase construye el caso de uso.
func NewCafeteriaUseCase(st *store.Store) *CafeteriaUseCase {
	return &CafeteriaUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *CafeteriaUseCase) Create(in dto.CreateCafeteriaRequest) int {
	items := uc.store.Cafeterias()
	nuevoID := 1
	for _, c := range items {
		if c.ID >= nuevoID {
			nuevoID = c.ID + 1
		}
	}
	items = append(items, entity.Cafeteria{
		ID:          nuevoID,
		Descripcion: in.Descripcion,
		CampusID:    in.CampusID,
		Encargado:   in.Encargado,
		Estado:      in.Estado,
	})
	uc.store.SetCafeterias(items)
	return nuevoID
}

// GetByID obtiene una cafetería por ID.
func (uc *CafeteriaUseCase) GetByID(id int) (*entity.Cafeteria, error) {
	for _, c := range uc.store.Cafeterias() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *CafeteriaUseCase) List() []entity.Cafeteria {
	return uc.store.Cafeterias()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *CafeteriaUseCase) Update(id int, in dto.UpdateCafeteriaRequest) {
	items := uc.store.Cafeterias()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if in.Descripcion != nil {
			items[i].Descripcion = *in.Descripcion
		}
		if in.CampusID != nil {
			items[i].CampusID = *in.CampusID
		}
		if in.Encargado != nil {
			items[i].Encargado = *in.Encargado
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetCafeterias(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *CafeteriaUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Cafeterias(), func(c entity.Cafeteria) bool {
		return c.ID == id
	})
	uc.store.SetCafeterias(items)
}
