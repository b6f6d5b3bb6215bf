package domain

import "errors"

// Errores de dominio (sin dependencias externas). Ninguno es fatal:
// la capa de presentación los muestra como mensajes legibles al usuario.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("existencia insuficiente")
)
