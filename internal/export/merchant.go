// Package export writes the catalog as a Google Merchant Center feed.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"solarcatalog/internal/model"
)

const (
	maxDescription      = 5000
	maxAdditionalImages = 9
	// Solar Energy in the Google product taxonomy.
	googleCategory = "3239"
	fallbackBrand  = "GreenSolarTech"
)

var columns = []string{
	"id", "title", "description", "link", "image_link", "additional_image_link",
	"availability", "price", "sale_price", "brand", "gtin", "mpn", "condition",
	"product_type", "google_product_category",
	"custom_label_0", "custom_label_1", "custom_label_2", "custom_label_3", "custom_label_4",
}

// Catalog provides the products to export.
type Catalog interface {
	ListFeedItems(ctx context.Context) ([]model.FeedItem, error)
}

// Stats sums up data quality of an exported feed.
type Stats struct {
	Total         int
	WithImages    int
	Featured      int
	NoImage       []string
	NoDescription []string
}

type Exporter struct {
	// BaseURL is the storefront root, e.g. https://greensolartech.com.ua.
	BaseURL string
	log     *slog.Logger
}

func NewExporter(baseURL string, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{BaseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Export writes the feed to path as CSV or, for .xlsx paths, as a workbook.
func (e *Exporter) Export(ctx context.Context, catalog Catalog, path string) (Stats, error) {
	items, err := catalog.ListFeedItems(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list products: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Stats{}, fmt.Errorf("create export dir: %w", err)
		}
	}

	var stats Stats
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		stats, err = e.WriteXLSX(path, items)
	} else {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return Stats{}, fmt.Errorf("create file: %w", err)
		}
		stats, err = e.WriteCSV(f, items)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return stats, err
	}

	e.log.Info("feed exported", "path", path, "products", stats.Total,
		"with_images", stats.WithImages, "featured", stats.Featured)
	if n := len(stats.NoImage); n > 0 {
		e.log.Warn("products without images", "count", n, "first", first(stats.NoImage, 5))
	}
	if n := len(stats.NoDescription); n > 0 {
		e.log.Warn("products without description", "count", n, "first", first(stats.NoDescription, 5))
	}
	return stats, nil
}

func (e *Exporter) WriteCSV(w io.Writer, items []model.FeedItem) (Stats, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return Stats{}, fmt.Errorf("failed to write headers: %w", err)
	}

	var stats Stats
	for _, it := range items {
		if err := writer.Write(e.record(it, &stats)); err != nil {
			return stats, fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return stats, writer.Error()
}

func (e *Exporter) WriteXLSX(path string, items []model.FeedItem) (Stats, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return Stats{}, fmt.Errorf("failed to write headers: %w", err)
	}

	var stats Stats
	for i, it := range items {
		rec := e.record(it, &stats)
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return stats, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return stats, fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return stats, fmt.Errorf("failed to save workbook: %w", err)
	}
	return stats, nil
}

func (e *Exporter) record(it model.FeedItem, stats *Stats) []string {
	p := it.Product
	stats.Total++

	mainImage := e.mediaURL(p.Image)
	if mainImage != "" {
		stats.WithImages++
	} else {
		stats.NoImage = append(stats.NoImage, p.Name)
	}
	if p.Description == "" {
		stats.NoDescription = append(stats.NoDescription, p.Name)
	}
	if p.Featured {
		stats.Featured++
	}

	var additional []string
	for _, g := range it.Gallery {
		if len(additional) == maxAdditionalImages {
			break
		}
		if u := e.mediaURL(g); u != "" && u != mainImage {
			additional = append(additional, u)
		}
	}

	availability := "out of stock"
	if p.InStock {
		availability = "in stock"
	}
	brand := it.BrandName
	if brand == "" {
		brand = fallbackBrand
	}
	featured := ""
	if p.Featured {
		featured = "featured"
	}

	return []string{
		p.ID.String(),
		p.Name,
		truncate(p.Description, maxDescription),
		fmt.Sprintf("%s/product/%s/", e.BaseURL, p.ID),
		mainImage,
		strings.Join(additional, ","),
		availability,
		p.Price.StringFixed(2) + " UAH",
		"",
		brand,
		"",
		p.Model,
		"new",
		it.CategoryName,
		googleCategory,
		p.Power,
		p.Efficiency,
		p.Warranty,
		p.Country,
		featured,
	}
}

func (e *Exporter) mediaURL(rel string) string {
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	return e.BaseURL + "/media/" + strings.TrimLeft(rel, "/")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func first(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
