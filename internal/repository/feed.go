package repository

import (
	"context"

	"solarcatalog/internal/model"
)

// ListFeedItems returns in-stock products with their category, brand and
// gallery paths in display order.
func (r *CatalogRepository) ListFeedItems(ctx context.Context) ([]model.FeedItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.brand_id, p.model, p.power,
		       p.efficiency, p.warranty, p.country, p.in_stock, p.featured, p.image,
		       p.created_at, p.updated_at, c.name, b.name,
		       COALESCE(
		           (SELECT array_agg(pi.image ORDER BY pi.sort_order)
		            FROM product_images pi WHERE pi.product_id = p.id),
		           '{}'
		       )
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		WHERE p.in_stock
		ORDER BY p.created_at, p.name
	`)
	if err != nil {
		return nil, mapError(err, "feed", "*")
	}
	defer rows.Close()

	var items []model.FeedItem
	for rows.Next() {
		var it model.FeedItem
		p := &it.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.BrandID,
			&p.Model, &p.Power, &p.Efficiency, &p.Warranty, &p.Country,
			&p.InStock, &p.Featured, &p.Image, &p.CreatedAt, &p.UpdatedAt,
			&it.CategoryName, &it.BrandName, &it.Gallery); err != nil {
			return nil, mapError(err, "feed", "*")
		}
		items = append(items, it)
	}
	return items, mapError(rows.Err(), "feed", "*")
}
