package entity

// Campus es una sede universitaria; las cafeterías pertenecen a un campus.
type Campus struct {
	ID          int    `json:"id"`
	Descripcion string `json:"descripcion"`
	Estado      bool   `json:"estado"`
}
