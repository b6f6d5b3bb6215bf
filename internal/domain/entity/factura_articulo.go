package entity

import "github.com/shopspring/decimal"

// FacturaArticulo es una línea de detalle de factura.
// Cada línea reserva UnidadesVendidas unidades de la existencia del artículo
// al momento de crearse; el motor de facturación mantiene esa convención.
type FacturaArticulo struct {
	ID               int             `json:"id"`
	FacturaID        int             `json:"facturaId"`
	ArticuloID       int             `json:"articuloId"`
	Monto            decimal.Decimal `json:"monto"`
	UnidadesVendidas int             `json:"unidadesVendidas"`
}
