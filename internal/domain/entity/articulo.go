package entity

import "github.com/shopspring/decimal"

// Articulo representa un artículo (SKU) del inventario.
// Existencia nunca es negativa: el motor de facturación ajusta con piso en cero.
type Articulo struct {
	ID          int             `json:"id"`
	Descripcion string          `json:"descripcion"`
	MarcaID     int             `json:"marcaId"`
	Costo       decimal.Decimal `json:"costo"`
	ProveedorID int             `json:"proveedorId"`
	Existencia  int             `json:"existencia"`
	Estado      bool            `json:"estado"`
}
