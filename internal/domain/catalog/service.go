package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID indica un id que no tiene la forma hex de un ObjectID.
	// Distinto de ErrNotFound: id malformado vs id bien formado pero ausente.
	ErrInvalidID = errors.New("invalid product id")

	// ErrNotFound lo devuelven los adapters cuando el documento no existe.
	ErrNotFound = errors.New("product not found")

	// ErrUnavailable lo devuelve el adapter "unavailable" cuando no hay
	// store configurado o la conexión falló al arrancar.
	ErrUnavailable = errors.New("store unavailable")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Species     string
	Description string
	Price       float64
	Image       string
	InStock     *bool // nil = default true
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Product{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Product{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return Product{}, ErrInvalidInput
	}
	if in.Price < 0 {
		return Product{}, ErrInvalidInput
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Image:       strings.TrimSpace(in.Image),
		InStock:     inStock,
		CreatedAt:   s.now(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// GetByID valida la forma del id antes de ir al store.
func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return Product{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
