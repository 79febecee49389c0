package memory

import (
	"context"
	"sync"

	"bee-store-api/internal/domain/orders"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ordersRepo struct {
	mu   sync.RWMutex
	byID map[string]orders.Order
}

func NewOrdersRepo() orders.Repository {
	return &ordersRepo{
		byID: make(map[string]orders.Order),
	}
}

func (r *ordersRepo) Insert(ctx context.Context, o orders.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	o.ID = id
	r.byID[id] = o
	return id, nil
}
