package entity

import "github.com/shopspring/decimal"

// Factura representa la cabecera de una venta.
// Total es opcional: puede venir precalculado por la capa de presentación
// o quedar nulo y derivarse de los detalles al renderizar.
type Factura struct {
	ID         int              `json:"id"`
	EmpleadoID int              `json:"empleadoId"`
	UsuarioID  int              `json:"usuarioId"`
	FechaVenta string           `json:"fechaVenta"`
	Comentario string           `json:"comentario"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	Estado     bool             `json:"estado"`
}
