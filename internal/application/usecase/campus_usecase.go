package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// CampusUseCase casos de uso CRUD para campus.
type CampusUseCase struct {
	store *store.Store
}

// NewCampusUseCase construye el caso de uso.
func NewCampusUseCase(st *store.Store) *CampusUseCase {
	return &CampusUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *CampusUseCase) Create(in dto.CreateCampusRequest) int {
	items := uc.store.Campus()
	nuevoID := 1
	for _, c := range items {
		if c.ID >= nuevoID {
			nuevoID = c.ID + 1
		}
	}
	items = append(items, entity.Campus{
		ID:          nuevoID,
		Descripcion: in.Descripcion,
		Estado:      in.Estado,
	})
	uc.store.SetCampus(items)
	return nuevoID
}

// GetByID obtiene un campus por ID.
func (uc *CampusUseCase) GetByID(id int) (*entity.Campus, error) {
	for _, c := range uc.store.Campus() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *CampusUseCase) List() []entity.Campus {
	return uc.store.Campus()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *CampusUseCase) Update(id int, in dto.UpdateCampusRequest) {
	items := uc.store.Campus()
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
		uc.store.SetCampus(items)
		return
	}
}

// Delete elimina por ID y persiste. Las cafeterías que referencien el campus
// conservan su campusId; los formularios solo listan padres activos.
func (uc *CampusUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Campus(), func(c entity.Campus) bool {
		return c.ID == id
	})
	uc.store.SetCampus(items)
}
