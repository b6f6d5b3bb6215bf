package entity

// Cafeteria es un punto de venta dentro de un campus.
// CampusID referencia a Campus; la integridad se valida en el formulario, no aquí.
type Cafeteria struct {
	ID          int    `json:"id"`
	Descripcion string `json:"descripcion"`
	CampusID    int    `json:"campusId"`
	Encargado   string `json:"encargado"`
	Estado      bool   `json:"estado"`
}
