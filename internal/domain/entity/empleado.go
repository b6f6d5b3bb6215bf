package entity

import "github.com/shopspring/decimal"

// Empleado es el personal de cafetería que registra las ventas.
type Empleado struct {
	ID                int             `json:"id"`
	Nombre            string          `json:"nombre"`
	Cedula            string          `json:"cedula"`
	TandaLabor        string          `json:"tandaLabor"` // matutina, vespertina, nocturna
	PorcientoComision decimal.Decimal `json:"porcientoComision"`
	FechaIngreso      string          `json:"fechaIngreso"`
	Estado            bool            `json:"estado"`
}
