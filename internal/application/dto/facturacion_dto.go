package dto

import "github.com/shopspring/decimal"

type CreateFacturaRequest struct {
	EmpleadoID int
	UsuarioID  int
	FechaVenta string
	Comentario string
	Total      *decimal.Decimal // opcional: total precalculado por la presentación
	Estado     bool
}

type UpdateFacturaRequest struct {
	EmpleadoID *int
	UsuarioID  *int
	FechaVenta *string
	Comentario *string
	Total      *decimal.Decimal
	Estado     *bool
}

type CreateFacturaArticuloRequest struct {
	FacturaID        int
	ArticuloID       int
	Monto            decimal.Decimal
	UnidadesVendidas int
}

// UpdateFacturaArticuloRequest parche de una línea de detalle. Cambiar
// ArticuloID o UnidadesVendidas dispara la reconciliación de existencia.
type UpdateFacturaArticuloRequest struct {
	FacturaID        *int
	ArticuloID       *int
	Monto            *decimal.Decimal
	UnidadesVendidas *int
}
