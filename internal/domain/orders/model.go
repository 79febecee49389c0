package orders

import "time"

type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order es inmutable una vez creada: no hay update ni cancelación en este core.
// Reference es un token legible para el cliente, asignado por el service;
// el ID lo asigna el store al insertar.
type Order struct {
	ID        string
	Reference string

	CustomerName  string
	CustomerEmail string

	Items []OrderItem

	CreatedAt time.Time
}
