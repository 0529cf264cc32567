package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"solarcatalog/internal/media"
	"solarcatalog/internal/model"
)

// CountImages counts the main image and gallery entries of a product.
func (r *CatalogRepository) CountImages(ctx context.Context, productID uuid.UUID) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `
		SELECT (CASE WHEN p.image <> '' THEN 1 ELSE 0 END)
		     + (SELECT COUNT(*) FROM product_images pi WHERE pi.product_id = p.id)
		FROM products p WHERE p.id = $1
	`, productID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "product", productID.String())
	}
	return n, nil
}

// AttachPrimaryImage saves data as the product's main image.
func (r *CatalogRepository) AttachPrimaryImage(ctx context.Context, productID uuid.UUID, data []byte, filename, alt string) error {
	if r.Media == nil {
		return errors.New("media store not configured")
	}
	rel, err := r.Media.Save(media.Primary, filename, data)
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, `UPDATE products SET image = $1, updated_at = now() WHERE id = $2`, rel, productID)
	if err == nil && tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
	}
	if err != nil {
		return r.discard(rel, mapError(err, "product", productID.String()))
	}
	return nil
}

// AppendGalleryImage saves data as a gallery entry at position order.
func (r *CatalogRepository) AppendGalleryImage(ctx context.Context, productID uuid.UUID, data []byte, filename, alt string, order int) error {
	if r.Media == nil {
		return errors.New("media store not configured")
	}
	rel, err := r.Media.Save(media.Gallery, filename, data)
	if err != nil {
		return err
	}

	img := model.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		Path:      rel,
		AltText:   alt,
		Order:     order,
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO product_images (id, product_id, image, alt_text, is_main, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, img.ID, img.ProductID, img.Path, img.AltText, img.IsMain, img.Order)
	if err != nil {
		return r.discard(rel, mapError(err, "product image", rel))
	}
	return nil
}

// discard removes a file whose row was never written. A file that cannot be
// removed is reported alongside err so it does not go unnoticed.
func (r *CatalogRepository) discard(rel string, err error) error {
	if rmErr := r.Media.Remove(rel); rmErr != nil {
		return errors.Join(err, fmt.Errorf("orphaned file %s: %w", rel, rmErr))
	}
	return err
}
