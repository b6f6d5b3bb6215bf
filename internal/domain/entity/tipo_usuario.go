package entity

// TipoUsuario clasifica a los usuarios del sistema (estudiante, docente, administrativo, etc.).
type TipoUsuario struct {
	ID          int    `json:"id"`
	Descripcion string `json:"descripcion"`
	Estado      bool   `json:"estado"`
}
