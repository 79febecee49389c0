package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Diagnostics reporta el estado de la conexión mongo para /test.
type Diagnostics struct {
	db *mongo.Database
}

func NewDiagnostics(db *mongo.Database) *Diagnostics {
	return &Diagnostics{db: db}
}

func (d *Diagnostics) Kind() string {
	return "mongo"
}

func (d *Diagnostics) DatabaseName() string {
	return d.db.Name()
}

func (d *Diagnostics) Ping(ctx context.Context) error {
	return d.db.Client().Ping(ctx, nil)
}

func (d *Diagnostics) Collections(ctx context.Context) ([]string, error) {
	return d.db.ListCollectionNames(ctx, bson.M{})
}
