package entity

// Marca representa una marca comercial de los artículos del catálogo.
type Marca struct {
	ID          int    `json:"id"`
	Descripcion string `json:"descripcion"`
	Estado      bool   `json:"estado"`
}
