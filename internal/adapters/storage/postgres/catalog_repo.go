package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bee-store-api/internal/domain/catalog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Insert(ctx context.Context, p catalog.Product) (string, error) {
	// Acá el id lo genera el adapter (Postgres no asigna ObjectIDs);
	// mismo formato hex que el backend mongo para parseo uniforme.
	id := primitive.NewObjectID().Hex()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO beeproduct (
			id, name, species, description,
			price, image, in_stock, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		id,
		p.Name,
		p.Species,
		p.Description,
		p.Price,
		p.Image,
		p.InStock,
		p.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, description, price, image, in_stock, created_at
		FROM beeproduct
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&p.Description,
			&p.Price,
			&p.Image,
			&p.InStock,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Product{}, catalog.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, description, price, image, in_stock, created_at
		FROM beeproduct
		WHERE id = $1
	`, id)

	var p catalog.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.InStock,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}

	return p, nil
}

func (r *CatalogRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beeproduct`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
