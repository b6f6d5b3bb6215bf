package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// UsuarioUseCase casos de uso CRUD para usuarios (clientes de la cafetería).
type UsuarioUseCase struct {
	store *store.Store
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(st *store.Store) *UsuarioUseCase {
	return &UsuarioUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) int {
	items := uc.store.Usuarios()
	nuevoID := 1
	for _, u := range items {
		if u.ID >= nuevoID {
			nuevoID = u.ID + 1
		}
	}
	items = append(items, entity.Usuario{
		ID:            nuevoID,
		Nombre:        in.Nombre,
		Cedula:        in.Cedula,
		TipoUsuarioID: in.TipoUsuarioID,
		LimiteCredito: in.LimiteCredito,
		FechaRegistro: in.FechaRegistro,
		Estado:        in.Estado,
	})
	uc.store.SetUsuarios(items)
	return nuevoID
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(id int) (*entity.Usuario, error) {
	for _, u := range uc.store.Usuarios() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *UsuarioUseCase) List() []entity.Usuario {
	return uc.store.Usuarios()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *UsuarioUseCase) Update(id int, in dto.UpdateUsuarioRequest) {
	items := uc.store.Usuarios()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if in.Nombre != nil {
			items[i].Nombre = *in.Nombre
		}
		if in.Cedula != nil {
			items[i].Cedula = *in.Cedula
		}
		if in.TipoUsuarioID != nil {
			items[i].TipoUsuarioID = *in.TipoUsuarioID
		}
		if in.LimiteCredito != nil {
			items[i].LimiteCredito = *in.LimiteCredito
		}
		if in.FechaRegistro != nil {
			items[i].FechaRegistro = *in.FechaRegistro
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetUsuarios(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *UsuarioUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Usuarios(), func(u entity.Usuario) bool {
		return u.ID == id
	})
	uc.store.SetUsuarios(items)
}
