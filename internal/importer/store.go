package importer

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"solarcatalog/internal/images"
	"solarcatalog/internal/model"
)

// ErrMissingField aborts a run whose source lacks a required column.
var ErrMissingField = errors.New("required column missing")

// Store is the persistent catalog. Find methods return model.ErrNotFound
// when nothing matches.
type Store interface {
	FindProductByName(ctx context.Context, name string) (model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) error
	UpdateProduct(ctx context.Context, p model.Product) error

	FindCategoryByName(ctx context.Context, name string) (model.Category, error)
	FindOrCreateCategory(ctx context.Context, c model.Category) (model.Category, bool, error)
	FindBrandByName(ctx context.Context, name string) (model.Brand, error)
	FindOrCreateBrand(ctx context.Context, b model.Brand) (model.Brand, bool, error)

	CountImages(ctx context.Context, productID uuid.UUID) (int, error)
	images.Sink
}

// Source yields raw rows until io.EOF.
type Source interface {
	Fields() []model.Field
	Next(ctx context.Context) (model.RawRow, error)
}

// ImageAttacher attaches the images listed in a row to a stored product.
type ImageAttacher interface {
	Attach(ctx context.Context, productID uuid.UUID, productName, urls string) images.Result
}

// Recorder receives per-row counters.
type Recorder interface {
	ObserveRow(status string)
	ObserveImages(attached, failed int)
	ObserveCreated(kind string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRow(string)      {}
func (nopRecorder) ObserveImages(int, int) {}
func (nopRecorder) ObserveCreated(string)  {}

// SliceSource serves rows from memory.
type SliceSource struct {
	Columns []model.Field
	Rows    []model.RawRow
	pos     int
}

func (s *SliceSource) Fields() []model.Field { return s.Columns }

func (s *SliceSource) Next(ctx context.Context) (model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return model.RawRow{}, err
	}
	if s.pos >= len(s.Rows) {
		return model.RawRow{}, io.EOF
	}
	row := s.Rows[s.pos]
	s.pos++
	return row, nil
}
