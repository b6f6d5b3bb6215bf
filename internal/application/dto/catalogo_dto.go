// Package dto define los requests que consume la capa de presentación.
// Los Create* son la entidad sin ID; los Update* son parches superficiales
// con campos opcionales (nil = el campo no cambia).
package dto

import "github.com/shopspring/decimal"

type CreateTipoUsuarioRequest struct {
	Descripcion string
	Estado      bool
}

type UpdateTipoUsuarioRequest struct {
	Descripcion *string
	Estado      *bool
}

type CreateMarcaRequest struct {
	Descripcion string
	Estado      bool
}

type UpdateMarcaRequest struct {
	Descripcion *string
	Estado      *bool
}

type CreateCampusRequest struct {
	Descripcion string
	Estado      bool
}

type UpdateCampusRequest struct {
	Descripcion *string
	Estado      *bool
}

type CreateProveedorRequest struct {
	NombreComercial string
	RNC             string
	FechaRegistro   string
	Estado          bool
}

type UpdateProveedorRequest struct {
	NombreComercial *string
	RNC             *string
	FechaRegistro   *string
	Estado          *bool
}

type CreateCafeteriaRequest struct {
	Descripcion string
	CampusID    int
	Encargado   string
	Estado      bool
}

type UpdateCafeteriaRequest struct {
	Descripcion *string
	CampusID    *int
	Encargado   *string
	Estado      *bool
}

type CreateUsuarioRequest struct {
	Nombre        string
	Cedula        string
	TipoUsuarioID int
	LimiteCredito decimal.Decimal
	FechaRegistro string
	Estado        bool
}

type UpdateUsuarioRequest struct {
	Nombre        *string
	Cedula        *string
	TipoUsuarioID *int
	LimiteCredito *decimal.Decimal
	FechaRegistro *string
	Estado        *bool
}

type CreateEmpleadoRequest struct {
	Nombre            string
	Cedula            string
	TandaLabor        string
	PorcientoComision decimal.Decimal
	FechaIngreso      string
	Estado            bool
}

type UpdateEmpleadoRequest struct {
	Nombre            *string
	Cedula            *string
	TandaLabor        *string
	PorcientoComision *decimal.Decimal
	FechaIngreso      *string
	Estado            *bool
}

type CreateArticuloRequest struct {
	Descripcion string
	MarcaID     int
	Costo       decimal.Decimal
	ProveedorID int
	Existencia  int
	Estado      bool
}

type UpdateArticuloRequest struct {
	Descripcion *string
	MarcaID     *int
	Costo       *decimal.Decimal
	ProveedorID *int
	Existencia  *int
	Estado      *bool
}
