package mongo

import (
	"context"
	"errors"
	"time"

	"bee-store-api/internal/domain/orders"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type orderItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

type orderDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Reference     string              `bson:"reference"`
	CustomerName  string              `bson:"customer_name,omitempty"`
	CustomerEmail string              `bson:"customer_email,omitempty"`
	Items         []orderItemDocument `bson:"items"`
	CreatedAt     time.Time           `bson:"created_at"`
}

type OrdersRepo struct {
	coll *mongo.Collection
}

func NewOrdersRepo(db *mongo.Database) *OrdersRepo {
	return &OrdersRepo{coll: db.Collection("order")}
}

func (r *OrdersRepo) Insert(ctx context.Context, o orders.Order) (string, error) {
	items := make([]orderItemDocument, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDocument{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	res, err := r.coll.InsertOne(ctx, orderDocument{
		Reference:     o.Reference,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		CreatedAt:     o.CreatedAt,
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
