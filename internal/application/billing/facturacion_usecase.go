// Package billing implementa el motor de facturación e inventario: las
// operaciones que mutan facturas, detalles de factura y artículos en
// conjunto, manteniendo la existencia consistente con las líneas vendidas.
package billing

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/unapec/cafeteria-admin/internal/application/dto"
	"github.com/unapec/cafeteria-admin/internal/domain"
	"github.com/unapec/cafeteria-admin/internal/domain/entity"
	"github.com/unapec/cafeteria-admin/internal/store"
)

// Config interruptores del motor.
//
// StockStrict en false reproduce el comportamiento heredado del sistema: una
// línea con artículo inexistente o existencia insuficiente se crea igualmente
// y el descuento de inventario simplemente se omite. En true esas operaciones
// se rechazan con ErrNotFound / ErrInsufficientStock, y una cantidad negativa
// con ErrInvalidInput.
//
// CascadeRestore en false reproduce la otra asimetría heredada: eliminar una
// factura borra sus detalles sin devolver existencia (a diferencia de
// DeleteFacturaArticulo, que sí la devuelve). En true la cascada restaura.
type Config struct {
	StockStrict    bool
	CascadeRestore bool
}

// FacturacionUseCase mantiene el invariante de que Articulo.Existencia
// refleja el efecto neto de los detalles de factura activos.
type FacturacionUseCase struct {
	store *store.Store
	log   zerolog.Logger
	cfg   Config
}

// NewFacturacionUseCase construye el motor.
func NewFacturacionUseCase(st *store.Store, log zerolog.Logger, cfg Config) *FacturacionUseCase {
	return &FacturacionUseCase{
		store: st,
		log:   log.With().Str("componente", "facturacion").Logger(),
		cfg:   cfg,
	}
}

// CreateFactura asigna el siguiente ID, agrega la cabecera y persiste.
// No toca inventario: eso ocurre línea por línea en CreateFacturaArticulo.
func (uc *FacturacionUseCase) CreateFactura(in dto.CreateFacturaRequest) int {
	facturas := uc.store.Facturas()
	nuevoID := 1
	for _, f := range facturas {
		if f.ID >= nuevoID {
			nuevoID = f.ID + 1
		}
	}
	facturas = append(facturas, entity.Factura{
		ID:         nuevoID,
		EmpleadoID: in.EmpleadoID,
		UsuarioID:  in.UsuarioID,
		FechaVenta: in.FechaVenta,
		Comentario: in.Comentario,
		Total:      in.Total,
		Estado:     in.Estado,
	})
	uc.store.SetFacturas(facturas)
	return nuevoID
}

// UpdateFactura aplica el parche superficial a la cabecera; no-op si no existe.
func (uc *FacturacionUseCase) UpdateFactura(id int, in dto.UpdateFacturaRequest) {
	facturas := uc.store.Facturas()
	for i := range facturas {
		if facturas[i].ID != id {
			continue
		}
		if in.EmpleadoID != nil {
			facturas[i].EmpleadoID = *in.EmpleadoID
		}
		if in.UsuarioID != nil {
			facturas[i].UsuarioID = *in.UsuarioID
		}
		if in.FechaVenta != nil {
			facturas[i].FechaVenta = *in.FechaVenta
		}
		if in.Comentario != nil {
			facturas[i].Comentario = *in.Comentario
		}
		if in.Total != nil {
			facturas[i].Total = in.Total
		}
		if in.Estado != nil {
			facturas[i].Estado = *in.Estado
		}
		uc.store.SetFacturas(facturas)
		return
	}
}

// DeleteFactura elimina la factura y, en cascada, todos sus detalles.
// Con CascadeRestore apagado (heredado) la cascada NO devuelve existencia:
// las unidades de las líneas eliminadas quedan descontadas del inventario.
func (uc *FacturacionUseCase) DeleteFactura(id int) {
	facturas := slices.DeleteFunc(uc.store.Facturas(), func(f entity.Factura) bool {
		return f.ID == id
	})

	detalles := uc.store.FacturaArticulos()
	articulos := uc.store.Articulos()
	restaurado := false
	if uc.cfg.CascadeRestore {
		for _, d := range detalles {
			if d.FacturaID != id {
				continue
			}
			if i := indiceArticulo(articulos, d.ArticuloID); i >= 0 {
				articulos[i].Existencia += d.UnidadesVendidas
				restaurado = true
			}
		}
	}

	restantes := slices.DeleteFunc(detalles, func(d entity.FacturaArticulo) bool {
		return d.FacturaID == id
	})

	uc.store.Batch(func() {
		uc.store.SetFacturas(facturas)
		if restaurado {
			uc.store.SetArticulos(articulos)
		}
		uc.store.SetFacturaArticulos(restantes)
	})
}

// CreateFacturaArticulo agrega una línea de detalle y descuenta existencia.
//
// El descuento es defensivo: se espera que el formulario ya haya validado
// existencia suficiente, pero el motor vuelve a mirar. En modo heredado
// (StockStrict apagado), si el artículo no existe o no alcanza, la línea se
// crea de todos modos y la existencia queda sin tocar; solo se deja
// advertencia en el log.
func (uc *FacturacionUseCase) CreateFacturaArticulo(in dto.CreateFacturaArticuloRequest) (int, error) {
	articulos := uc.store.Articulos()
	idx := indiceArticulo(articulos, in.ArticuloID)

	if uc.cfg.StockStrict {
		if in.UnidadesVendidas < 0 {
			return 0, domain.ErrInvalidInput
		}
		if idx < 0 {
			return 0, domain.ErrNotFound
		}
		if articulos[idx].Existencia < in.UnidadesVendidas {
			return 0, domain.ErrInsufficientStock
		}
	}

	detalles := uc.store.FacturaArticulos()
	nuevoID := 1
	for _, d := range detalles {
		if d.ID >= nuevoID {
			nuevoID = d.ID + 1
		}
	}
	detalles = append(detalles, entity.FacturaArticulo{
		ID:               nuevoID,
		FacturaID:        in.FacturaID,
		ArticuloID:       in.ArticuloID,
		Monto:            in.Monto,
		UnidadesVendidas: in.UnidadesVendidas,
	})

	descuenta := false
	switch {
	case idx < 0:
		uc.log.Warn().Int("articuloId", in.ArticuloID).
			Msg("artículo inexistente: línea creada sin descuento de existencia")
	case articulos[idx].Existencia >= in.UnidadesVendidas:
		articulos[idx].Existencia -= in.UnidadesVendidas
		descuenta = true
	default:
		uc.log.Warn().Int("articuloId", in.ArticuloID).
			Int("existencia", articulos[idx].Existencia).
			Int("unidadesVendidas", in.UnidadesVendidas).
			Msg("existencia insuficiente: línea creada sin descuento de existencia")
	}

	uc.store.Batch(func() {
		uc.store.SetFacturaArticulos(detalles)
		if descuenta {
			uc.store.SetArticulos(articulos)
		}
	})

	return nuevoID, nil
}

// UpdateFacturaArticulo aplica el parche a la línea y reconcilia existencia.
// No-op si la línea no existe. Los valores viejos se leen del snapshot previo
// al parche; línea y artículos se confirman en un mismo lote (store.Batch),
// de modo que el suscriptor nunca observa un estado intermedio.
func (uc *FacturacionUseCase) UpdateFacturaArticulo(id int, in dto.UpdateFacturaArticuloRequest) {
	detalles := uc.store.FacturaArticulos()
	idx := -1
	for i := range detalles {
		if detalles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	previo := detalles[idx]
	oldUnidades := previo.UnidadesVendidas
	newUnidades := oldUnidades
	if in.UnidadesVendidas != nil {
		newUnidades = *in.UnidadesVendidas
	}
	oldArticuloID := previo.ArticuloID
	newArticuloID := oldArticuloID
	if in.ArticuloID != nil {
		newArticuloID = *in.ArticuloID
	}

	if in.FacturaID != nil {
		detalles[idx].FacturaID = *in.FacturaID
	}
	if in.ArticuloID != nil {
		detalles[idx].ArticuloID = *in.ArticuloID
	}
	if in.Monto != nil {
		detalles[idx].Monto = *in.Monto
	}
	if in.UnidadesVendidas != nil {
		detalles[idx].UnidadesVendidas = *in.UnidadesVendidas
	}

	articulos := uc.store.Articulos()
	ajustado := false
	if oldArticuloID != newArticuloID {
		// Cambió el artículo: devolver las unidades viejas al anterior
		// (suma incondicional) y descontar las nuevas del actual con piso en cero.
		if i := indiceArticulo(articulos, oldArticuloID); i >= 0 {
			articulos[i].Existencia += oldUnidades
			ajustado = true
		}
		if i := indiceArticulo(articulos, newArticuloID); i >= 0 {
			articulos[i].Existencia = max(0, articulos[i].Existencia-newUnidades)
			ajustado = true
		}
	} else if oldUnidades != newUnidades {
		// Mismo artículo: ajustar la diferencia con signo, con piso en cero.
		// Un aumento de cantidad da diferencia negativa (más descuento).
		if i := indiceArticulo(articulos, newArticuloID); i >= 0 {
			diferencia := oldUnidades - newUnidades
			articulos[i].Existencia = max(0, articulos[i].Existencia+diferencia)
			ajustado = true
		}
	}

	uc.store.Batch(func() {
		uc.store.SetFacturaArticulos(detalles)
		if ajustado {
			uc.store.SetArticulos(articulos)
		}
	})
}

// DeleteFacturaArticulo devuelve las unidades vendidas a la existencia del
// artículo (suma incondicional, no necesita piso) y elimina la línea.
// No-op si la línea no existe.
func (uc *FacturacionUseCase) DeleteFacturaArticulo(id int) {
	detalles := uc.store.FacturaArticulos()
	idx := -1
	for i := range detalles {
		if detalles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	articulos := uc.store.Articulos()
	restaurado := false
	if i := indiceArticulo(articulos, detalles[idx].ArticuloID); i >= 0 {
		articulos[i].Existencia += detalles[idx].UnidadesVendidas
		restaurado = true
	}

	uc.store.Batch(func() {
		if restaurado {
			uc.store.SetArticulos(articulos)
		}
		uc.store.SetFacturaArticulos(slices.Delete(detalles, idx, idx+1))
	})
}

func indiceArticulo(articulos []entity.Articulo, id int) int {
	for i := range articulos {
		if articulos[i].ID == id {
			return i
		}
	}
	return -1
}
