package catalog

import "context"

type Repository interface {
	// Insert persiste el producto y devuelve el id asignado por el store.
	Insert(ctx context.Context, p Product) (string, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Count(ctx context.Context) (int64, error)
}
