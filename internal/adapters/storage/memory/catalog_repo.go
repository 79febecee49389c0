package memory

import (
	"context"
	"sync"

	"bee-store-api/internal/domain/catalog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type catalogRepo struct {
	mu   sync.RWMutex
	byID map[string]catalog.Product
	ids  []string // orden de inserción, para listados estables
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: make(map[string]catalog.Product),
	}
}

func (r *catalogRepo) Insert(ctx context.Context, p catalog.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Mismo formato de id que el backend mongo, para que el parseo de ids
	// sea uniforme entre backends.
	id := primitive.NewObjectID().Hex()
	p.ID = id

	r.byID[id] = p
	r.ids = append(r.ids, id)
	return id, nil
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *catalogRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byID)), nil
}
