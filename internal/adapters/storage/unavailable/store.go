// Package unavailable implementa el estado explícito "sin store": cuando no
// hay conexión configurada (o falló al arrancar), el server igual levanta,
// /test reporta el motivo y cada operación de datos falla con su sentinel
// en vez de un nil check repartido por los handlers.
package unavailable

import (
	"context"
	"errors"

	"bee-store-api/internal/domain/catalog"
	"bee-store-api/internal/domain/orders"
)

type Store struct {
	reason string
}

func New(reason string) *Store {
	return &Store{reason: reason}
}

// Reason describe por qué no hay store (para /test y logs).
func (s *Store) Reason() string {
	return s.reason
}

func (s *Store) Catalog() catalog.Repository {
	return catalogRepo{}
}

func (s *Store) Orders() orders.Repository {
	return ordersRepo{}
}

func (s *Store) Kind() string {
	return "unavailable"
}

func (s *Store) DatabaseName() string {
	return ""
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.New(s.reason)
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return nil, errors.New(s.reason)
}

type catalogRepo struct{}

func (catalogRepo) Insert(ctx context.Context, p catalog.Product) (string, error) {
	return "", catalog.ErrUnavailable
}

func (catalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	return nil, catalog.ErrUnavailable
}

func (catalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	return catalog.Product{}, catalog.ErrUnavailable
}

func (catalogRepo) Count(ctx context.Context) (int64, error) {
	return 0, catalog.ErrUnavailable
}

type ordersRepo struct{}

func (ordersRepo) Insert(ctx context.Context, o orders.Order) (string, error) {
	return "", orders.ErrUnavailable
}
