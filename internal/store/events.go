package store

import "github.com/google/uuid"

// Evento notifica que una colección fue reemplazada. La capa de presentación
// se suscribe para re-renderizar desde el estado actualizado.
type Evento struct {
	ID        string // identificador único del evento
	Coleccion string // clave de la colección afectada (KeyMarcas, KeyArticulos, ...)
}

// bus mantiene las suscripciones de cambio. Sin locking: el contrato del
// almacén es de un único escritor lógico (ver Store).
type bus struct {
	subs map[string]func(Evento)
}

func newBus() *bus {
	return &bus{subs: make(map[string]func(Evento))}
}

func (b *bus) subscribe(fn func(Evento)) (cancel func()) {
	id := uuid.NewString()
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

func (b *bus) publish(coleccion string) {
	ev := Evento{ID: uuid.NewString(), Coleccion: coleccion}
	for _, fn := range b.subs {
		fn(ev)
	}
}
