package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDatabaseName = "beestore"

// Open conecta al cluster y devuelve el handle de la base.
// Hace ping acá para que un URI muerto se detecte al arrancar, no en el
// primer request; el caller decide qué hacer con el error (no crashea).
func Open(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	dbName = strings.TrimSpace(dbName)
	if dbName == "" {
		dbName = defaultDatabaseName
	}

	return client.Database(dbName), nil
}
