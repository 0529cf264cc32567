package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Characteristic is one name/value/unit triple from the source sheet.
type Characteristic struct {
	Name  string
	Value string
	Unit  string
}

// RawRow is a single spreadsheet row as read from the source. It is never mutated.
type RawRow struct {
	NameUK          string
	NameRU          string
	DescriptionUK   string
	DescriptionRU   string
	Price           string
	CategoryLabel   string
	BrandLabel      string
	Country         string
	ProductCode     string
	ImageURLs       string
	Characteristics []Characteristic
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	BrandID     uuid.UUID
	Model       string
	Power       string
	Efficiency  string
	Warranty    string
	Country     string
	InStock     bool
	Featured    bool
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Path      string
	AltText   string
	IsMain    bool
	Order     int
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

type Brand struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Country     string
	IsActive    bool
}

// FeedItem is a product joined with its taxonomy and images for export.
type FeedItem struct {
	Product
	CategoryName string
	BrandName    string
	Gallery      []string
}
