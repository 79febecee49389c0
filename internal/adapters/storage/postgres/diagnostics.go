package postgres

import (
	"context"
	"database/sql"
)

// Diagnostics reporta el estado de la conexión Postgres para /test.
type Diagnostics struct {
	db *sql.DB
}

func NewDiagnostics(db *sql.DB) *Diagnostics {
	return &Diagnostics{db: db}
}

func (d *Diagnostics) Kind() string {
	return "postgres"
}

func (d *Diagnostics) DatabaseName() string {
	var name string
	if err := d.db.QueryRow(`SELECT current_database()`).Scan(&name); err != nil {
		return ""
	}
	return name
}

func (d *Diagnostics) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Collections lista las tablas públicas, el equivalente relacional de las
// colecciones del backend documental.
func (d *Diagnostics) Collections(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, rows.Err()
}
