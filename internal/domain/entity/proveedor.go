package entity

// Proveedor representa un suplidor de artículos.
// FechaRegistro se persiste como fecha plana YYYY-MM-DD.
type Proveedor struct {
	ID              int    `json:"id"`
	NombreComercial string `json:"nombreComercial"`
	RNC             string `json:"rnc"` // Registro Nacional de Contribuyentes
	FechaRegistro   string `json:"fechaRegistro"`
	Estado          bool   `json:"estado"`
}
