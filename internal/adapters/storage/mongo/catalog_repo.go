package mongo

import (
	"context"
	"errors"
	"time"

	"bee-store-api/internal/domain/catalog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDocument es la forma persistida; el dominio trabaja con ids string,
// la conversión a ObjectID vive solo en este adapter.
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Species     string             `bson:"species"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	InStock     bool               `bson:"in_stock"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type CatalogRepo struct {
	coll *mongo.Collection
}

func NewCatalogRepo(db *mongo.Database) *CatalogRepo {
	return &CatalogRepo{coll: db.Collection("beeproduct")}
}

func (r *CatalogRepo) Insert(ctx context.Context, p catalog.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, productDocument{
		Name:        p.Name,
		Species:     p.Species,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	})
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("mongo: unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProduct(d))
	}
	return out, nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return catalog.Product{}, catalog.ErrInvalidID
	}

	var doc productDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}

	return toProduct(doc), nil
}

func (r *CatalogRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func toProduct(d productDocument) catalog.Product {
	return catalog.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Species:     d.Species,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		InStock:     d.InStock,
		CreatedAt:   d.CreatedAt,
	}
}
