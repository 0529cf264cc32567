package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"solarcatalog/internal/model"
	"solarcatalog/internal/taxonomy"
)

func (r *CatalogRepository) FindCategoryByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, slug, description, is_active
		FROM categories WHERE name = $1 LIMIT 1
	`, name).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive)
	if err != nil {
		return model.Category{}, mapError(err, "category", name)
	}
	return c, nil
}

// FindOrCreateCategory returns the category named c.Name, inserting c with
// a fresh id and unique slug when there is none. The bool reports an insert.
func (r *CatalogRepository) FindOrCreateCategory(ctx context.Context, c model.Category) (model.Category, bool, error) {
	existing, err := r.FindCategoryByName(ctx, c.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Category{}, false, err
	}

	c.ID = uuid.New()
	if c.Slug, err = taxonomy.UniqueSlug(ctx, taxonomy.Slugify(c.Name), r.slugTaken("categories")); err != nil {
		return model.Category{}, false, err
	}

	_, err = r.DB.Exec(ctx, `
		INSERT INTO categories (id, name, slug, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Slug, c.Description, c.IsActive)
	if err != nil {
		return model.Category{}, false, mapError(err, "category", c.Name)
	}
	return c, true, nil
}

func (r *CatalogRepository) FindBrandByName(ctx context.Context, name string) (model.Brand, error) {
	var b model.Brand
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, slug, description, country, is_active
		FROM brands WHERE name = $1 LIMIT 1
	`, name).Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.Country, &b.IsActive)
	if err != nil {
		return model.Brand{}, mapError(err, "brand", name)
	}
	return b, nil
}

func (r *CatalogRepository) FindOrCreateBrand(ctx context.Context, b model.Brand) (model.Brand, bool, error) {
	existing, err := r.FindBrandByName(ctx, b.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, false, err
	}

	b.ID = uuid.New()
	if b.Slug, err = taxonomy.UniqueSlug(ctx, taxonomy.Slugify(b.Name), r.slugTaken("brands")); err != nil {
		return model.Brand{}, false, err
	}

	_, err = r.DB.Exec(ctx, `
		INSERT INTO brands (id, name, slug, description, country, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.Name, b.Slug, b.Description, b.Country, b.IsActive)
	if err != nil {
		return model.Brand{}, false, mapError(err, "brand", b.Name)
	}
	return b, true, nil
}

func (r *CatalogRepository) slugTaken(table string) func(context.Context, string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE slug = $1)`, table)
	return func(ctx context.Context, slug string) (bool, error) {
		var exists bool
		if err := r.DB.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
			return false, mapError(err, table, slug)
		}
		return exists, nil
	}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, slug, description, is_active FROM categories ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "category", "*")
	}
	defer rows.Close()

	var list []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive); err != nil {
			return nil, mapError(err, "category", "*")
		}
		list = append(list, c)
	}
	return list, mapError(rows.Err(), "category", "*")
}

func (r *CatalogRepository) ListBrands(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, slug, description, country, is_active FROM brands ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "brand", "*")
	}
	defer rows.Close()

	var list []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.Country, &b.IsActive); err != nil {
			return nil, mapError(err, "brand", "*")
		}
		list = append(list, b)
	}
	return list, mapError(rows.Err(), "brand", "*")
}
