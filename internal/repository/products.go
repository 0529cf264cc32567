package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"solarcatalog/internal/model"
)

const productColumns = `id, name, description, price, category_id, brand_id, model, power,
	efficiency, warranty, country, in_stock, featured, image, created_at, updated_at`

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID,
		&p.Model, &p.Power, &p.Efficiency, &p.Warranty, &p.Country,
		&p.InStock, &p.Featured, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *CatalogRepository) FindProductByName(ctx context.Context, name string) (model.Product, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 LIMIT 1`, name)
	p, err := scanProduct(row)
	if err != nil {
		return model.Product{}, mapError(err, "product", name)
	}
	return p, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p model.Product) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO products
		(id, name, description, price, category_id, brand_id, model, power,
		 efficiency, warranty, country, in_stock, featured, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.BrandID, p.Model, p.Power,
		p.Efficiency, p.Warranty, p.Country, p.InStock, p.Featured, p.Image, p.CreatedAt, p.UpdatedAt)
	return mapError(err, "product", p.Name)
}

// UpdateProduct rewrites the imported fields. Stock, featured flag and
// images are left as they are.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, p model.Product) error {
	query, args, err := psql.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("category_id", p.CategoryID).
		Set("brand_id", p.BrandID).
		Set("model", p.Model).
		Set("power", p.Power).
		Set("efficiency", p.Efficiency).
		Set("warranty", p.Warranty).
		Set("country", p.Country).
		Set("updated_at", p.UpdatedAt).
		Where("id = ?", p.ID).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "product", p.Name)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "product", p.Name)
	}
	return nil
}

// RenameProduct stores a renormalized name and description.
func (r *CatalogRepository) RenameProduct(ctx context.Context, id uuid.UUID, name, description string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE products SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`, name, description, id)
	if err != nil {
		return mapError(err, "product", name)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "product", name)
	}
	return nil
}

// DeleteProduct removes a product and its gallery rows, then the image files
// they referenced. Files that cannot be removed are returned in the error;
// the rows are gone either way.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	rows, err := r.DB.Query(ctx, `SELECT image FROM product_images WHERE product_id = $1`, id)
	if err != nil {
		return mapError(err, "product", id.String())
	}
	files, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return mapError(err, "product", id.String())
	}

	var primary string
	err = r.DB.QueryRow(ctx, `DELETE FROM products WHERE id = $1 RETURNING image`, id).Scan(&primary)
	if err != nil {
		return mapError(err, "product", id.String())
	}
	files = append(files, primary)

	if r.Media == nil {
		return nil
	}
	var errs []error
	for _, rel := range files {
		if err := r.Media.Remove(rel); err != nil {
			errs = append(errs, fmt.Errorf("orphaned file %s: %w", rel, err))
		}
	}
	return errors.Join(errs...)
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, name`)
	if err != nil {
		return nil, mapError(err, "product", "*")
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, mapError(err, "product", "*")
		}
		list = append(list, p)
	}
	return list, mapError(rows.Err(), "product", "*")
}
