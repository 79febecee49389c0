package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"bee-store-api/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable lo devuelven los adapters cuando no hay store configurado.
	ErrUnavailable = errors.New("store unavailable")
)

// InvalidProductIDError: el product_id vino pero no parsea al formato de id del store.
type InvalidProductIDError struct {
	ProductID string
}

func (e *InvalidProductIDError) Error() string {
	return "Invalid product id: " + e.ProductID
}

// ProductNotFoundError: product_id bien formado sin documento que lo respalde.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return "Product not found: " + e.ProductID
}

type Service struct {
	repo    Repository
	catalog *catalog.Service
	now     func() time.Time
}

func NewService(repo Repository, catalogSvc *catalog.Service) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogSvc,
		now:     time.Now,
	}
}

type ItemInput struct {
	ProductID string
	Quantity  int
}

type CreateInput struct {
	CustomerName  string
	CustomerEmail string
	Items         []ItemInput
}

// Create valida en orden y corta en el primer fallo:
//  1. items vacío o malformado (quantity < 1) => ErrInvalidInput
//  2. por item, en orden: id malformado => InvalidProductIDError,
//     id bien formado sin producto => ProductNotFoundError
//  3. un único insert al final; nunca se persiste una orden parcial.
//
// El chequeo de existencia es punto-en-el-tiempo: no hay lock entre la
// verificación y el insert. Es benigno porque los productos no se borran
// en este core, y lo dejamos así adrede.
func (s *Service) Create(ctx context.Context, in CreateInput) (Order, error) {
	if len(in.Items) == 0 {
		return Order{}, ErrInvalidInput
	}

	items := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 {
			return Order{}, ErrInvalidInput
		}
		items = append(items, OrderItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
		})
	}

	for _, it := range items {
		if _, err := s.catalog.GetByID(ctx, it.ProductID); err != nil {
			switch {
			case errors.Is(err, catalog.ErrInvalidID):
				return Order{}, &InvalidProductIDError{ProductID: it.ProductID}
			case errors.Is(err, catalog.ErrNotFound):
				return Order{}, &ProductNotFoundError{ProductID: it.ProductID}
			case errors.Is(err, catalog.ErrUnavailable):
				return Order{}, ErrUnavailable
			default:
				return Order{}, err
			}
		}
	}

	o := Order{
		Reference:     uuid.NewString(),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		Items:         items,
		CreatedAt:     s.now(),
	}

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		return Order{}, err
	}
	o.ID = id
	return o, nil
}
