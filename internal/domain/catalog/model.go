package catalog

import "time"

// Product representa un producto apícola del catálogo.
// El ID lo asigna el store al insertar (forma hex de un ObjectID) y nunca se muta.
// Los productos no se actualizan ni se borran en este core.
type Product struct {
	ID string

	Name        string
	Species     string // etiqueta taxonómica, ej. "Apis mellifera ligustica"
	Description string
	Price       float64
	Image       string
	InStock     bool

	CreatedAt time.Time
}
