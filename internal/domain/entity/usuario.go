package entity

import "github.com/shopspring/decimal"

// Usuario es un cliente de la cafetería (estudiante, docente, etc. según TipoUsuarioID).
type Usuario struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	Cedula        string          `json:"cedula"`
	TipoUsuarioID int             `json:"tipoUsuarioId"`
	LimiteCredito decimal.Decimal `json:"limiteCredito"`
	FechaRegistro string          `json:"fechaRegistro"`
	Estado        bool            `json:"estado"`
}
