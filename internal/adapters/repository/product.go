// internal/adapters/repository/product.go
package repository

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"

	"github.com/shopcore/backend/internal/domain"
)

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, rating, photo, in_stock)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		product.ID, product.Name, product.Description, product.Price,
		product.Rating, product.Photo, product.InStock)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}
	return nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, price, rating, photo, in_stock FROM products ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Rating, &p.Photo, &p.InStock); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, rating, photo, in_stock FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Rating, &p.Photo, &p.InStock)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan product")
	}
	return p, nil
}
