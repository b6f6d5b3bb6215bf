package store

// Claves fijas bajo las que se persiste cada colección. Coinciden con el
// esquema de almacenamiento histórico del sistema, de modo que un volcado
// existente se carga sin migración.
const (
	KeyTiposUsuario     = "cafeteria_tipos_usuario"
	KeyMarcas           = "cafeteria_marcas"
	KeyCampus           = "cafeteria_campus"
	KeyProveedores      = "cafeteria_proveedores"
	KeyCafeterias       = "cafeteria_cafeterias"
	KeyUsuarios         = "cafeteria_usuarios"
	KeyEmpleados        = "cafeteria_empleados"
	KeyArticulos        = "cafeteria_articulos"
	KeyFacturas         = "cafeteria_facturas"
	KeyFacturaArticulos = "cafeteria_factura_articulos"
)

// Storage es el puerto de persistencia de blobs (DIP): una colección
// serializada por clave. La durabilidad es responsabilidad del adaptador.
type Storage interface {
	// Load devuelve el blob de la clave, o (nil, nil) si no existe.
	Load(key string) ([]byte, error)
	// Save serializa y almacena el blob de la clave.
	Save(key string, data []byte) error
}
