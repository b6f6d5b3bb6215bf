package usecase

import (
	"slices"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// EmpleadoUseCase casos de uso CRUD para empleados.
type EmpleadoUseCase struct {
	store *store.Store
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(st *store.Store) *EmpleadoUseCase {
	return &EmpleadoUseCase{store: st}
}

// Create asigna el siguiente ID (máximo + 1), agrega y persiste.
func (uc *EmpleadoUseCase) Create(in dto.CreateEmpleadoRequest) int {
	items := uc.store.Empleados()
	nuevoID := 1
	for _, e := range items {
		if e.ID >= nuevoID {
			nuevoID = e.ID + 1
		}
	}
	items = append(items, entity.Empleado{
		ID:                nuevoID,
		Nombre:            in.Nombre,
		Cedula:            in.Cedula,
		TandaLabor:        in.TandaLabor,
		PorcientoComision: in.PorcientoComision,
		FechaIngreso:      in.FechaIngreso,
		Estado:            in.Estado,
	})
	uc.store.SetEmpleados(items)
	return nuevoID
}

// GetByID obtiene un empleado por ID.
func (uc *EmpleadoUseCase) GetByID(id int) (*entity.Empleado, error) {
	for _, e := range uc.store.Empleados() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve la colección completa.
func (uc *EmpleadoUseCase) List() []entity.Empleado {
	return uc.store.Empleados()
}

// Update aplica el parche superficial; si el ID no existe es un no-op.
func (uc *EmpleadoUseCase) Update(id int, in dto.UpdateEmpleadoRequest) {
	items := uc.store.Empleados()
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
		if in.TandaLabor != nil {
			items[i].TandaLabor = *in.TandaLabor
		}
		if in.PorcientoComision != nil {
			items[i].PorcientoComision = *in.PorcientoComision
		}
		if in.FechaIngreso != nil {
			items[i].FechaIngreso = *in.FechaIngreso
		}
		if in.Estado != nil {
			items[i].Estado = *in.Estado
		}
		uc.store.SetEmpleados(items)
		return
	}
}

// Delete elimina por ID y persiste.
func (uc *EmpleadoUseCase) Delete(id int) {
	items := slices.DeleteFunc(uc.store.Empleados(), func(e entity.Empleado) bool {
		return e.ID == id
	})
	uc.store.SetEmpleados(items)
}
