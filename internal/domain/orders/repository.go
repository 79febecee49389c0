package orders

import "context"

type Repository interface {
	// Insert persiste la orden y devuelve el id asignado por el store.
	Insert(ctx context.Context, o Order) (string, error)
}
