package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea las tablas si no existen. Los nombres replican las
// colecciones del backend documental ("beeproduct", "order") para que ambos
// backends sean intercambiables detrás de los mismos ports.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS beeproduct (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			species     TEXT NOT NULL,
			description TEXT NOT NULL,
			price       DOUBLE PRECISION NOT NULL,
			image       TEXT NOT NULL DEFAULT '',
			in_stock    BOOLEAN NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS "order" (
			id             TEXT PRIMARY KEY,
			reference      TEXT NOT NULL,
			customer_name  TEXT NOT NULL DEFAULT '',
			customer_email TEXT NOT NULL DEFAULT '',
			items          JSONB NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}
