package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"bee-store-api/internal/domain/orders"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrdersRepo struct {
	db *sql.DB
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

type orderItemRow struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r *OrdersRepo) Insert(ctx context.Context, o orders.Order) (string, error) {
	items := make([]orderItemRow, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRow{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	// items va como JSONB: las órdenes son inmutables y nunca se consultan
	// por item, no hace falta una tabla de detalle.
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO "order" (
			id, reference, customer_name, customer_email, items, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		id,
		o.Reference,
		o.CustomerName,
		o.CustomerEmail,
		raw,
		o.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
