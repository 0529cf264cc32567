// Package importer merges normalized spreadsheet rows into the catalog.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"solarcatalog/internal/images"
	"solarcatalog/internal/lexicon"
	"solarcatalog/internal/model"
	"solarcatalog/internal/sanitize"
	"solarcatalog/internal/taxonomy"
)

const defaultBatchSize = 50

type Config struct {
	MinNameLength int
}

// RunOptions are chosen by the operator per run.
type RunOptions struct {
	UpdateExisting bool
	// Preview computes outcomes without calling any mutating store method.
	Preview   bool
	Verbose   bool
	BatchSize int
}

type Engine struct {
	store      Store
	normalizer *lexicon.Normalizer
	resolver   *taxonomy.Resolver
	images     ImageAttacher
	recorder   Recorder
	log        *slog.Logger
	cfg        Config
	now        func() time.Time
}

// NewEngine wires the pipeline. img may be nil, in which case rows are
// imported without pictures.
func NewEngine(store Store, normalizer *lexicon.Normalizer, resolver *taxonomy.Resolver, img ImageAttacher, cfg Config, log *slog.Logger) *Engine {
	if cfg.MinNameLength <= 0 {
		cfg.MinNameLength = 5
	}
	return &Engine{
		store:      store,
		normalizer: normalizer,
		resolver:   resolver,
		images:     img,
		recorder:   nopRecorder{},
		log:        log,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (e *Engine) WithRecorder(r Recorder) *Engine {
	if r != nil {
		e.recorder = r
	}
	return e
}

// Run processes every row of src in order. Row problems become outcomes;
// only a missing name column, a source read error or cancellation end the
// run early, and rows committed before that stay committed.
func (e *Engine) Run(ctx context.Context, src Source, opts RunOptions) (Summary, error) {
	var sum Summary
	if err := requireName(src.Fields()); err != nil {
		return sum, err
	}

	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	start := e.now()
	seen := NewSeenNames()
	e.log.Info("import started", "update_existing", opts.UpdateExisting, "preview", opts.Preview, "batch", batch)

	for index := 1; ; index++ {
		if err := ctx.Err(); err != nil {
			sum.Duration = e.now().Sub(start)
			return sum, err
		}

		row, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			sum.Duration = e.now().Sub(start)
			return sum, fmt.Errorf("read row %d: %w", index, err)
		}

		out := e.ProcessRow(ctx, index, row, seen, opts)
		sum.add(out)
		e.report(out, opts.Verbose)

		if index%batch == 0 {
			e.log.Info("batch processed",
				"rows", index, "created", sum.Created, "updated", sum.Updated,
				"skipped", sum.Skipped, "failed", sum.Failed)
		}
	}

	sum.Duration = e.now().Sub(start)
	e.log.Info("import finished",
		"rows", sum.Total(), "created", sum.Created, "updated", sum.Updated,
		"skipped", sum.Skipped, "failed", sum.Failed,
		"categories_created", sum.CategoriesCreated, "brands_created", sum.BrandsCreated,
		"images", sum.ImagesFetched, "duration", sum.Duration)
	return sum, nil
}

func requireName(fields []model.Field) error {
	for _, f := range fields {
		if f == model.FieldNameUK || f == model.FieldNameRU {
			return nil
		}
	}
	return fmt.Errorf("%w: product name", ErrMissingField)
}

func (e *Engine) report(out Outcome, verbose bool) {
	e.recorder.ObserveRow(out.Status.String())
	switch out.Status {
	case StatusFailed:
		e.log.Error("row failed", "row", out.Row, "name", out.Name, "reason", out.Reason, "field", out.Field, "error", out.Err)
	case StatusSkipped:
		if verbose {
			e.log.Info("row skipped", "row", out.Row, "name", out.Name, "reason", out.Reason, "detail", out.Detail)
		}
	default:
		if verbose {
			e.log.Info("row "+out.Status.String(), "row", out.Row, "name", out.Name, "category", out.Category, "brand", out.Brand, "images", out.ImagesAttached)
		}
	}
	for _, w := range out.Warnings {
		e.log.Warn("row warning", "row", out.Row, "reason", w.Reason, "detail", w.Detail)
	}
}

// ProcessRow takes one row to a terminal state. It never panics and never
// returns an error: everything that goes wrong is described by the outcome.
func (e *Engine) ProcessRow(ctx context.Context, index int, row model.RawRow, seen *SeenNames, opts RunOptions) (out Outcome) {
	out.Row = index
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Reason = ReasonPanic
			out.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	for _, f := range []struct {
		field model.Field
		raw   string
	}{
		{model.FieldNameUK, row.NameUK},
		{model.FieldNameRU, row.NameRU},
		{model.FieldDescriptionUK, row.DescriptionUK},
		{model.FieldDescriptionRU, row.DescriptionRU},
	} {
		if sanitize.Anomalous(f.raw) {
			out.warn(ReasonSanitizationAnomaly, f.field.String())
		}
	}

	name := e.normalizer.Normalize(pickName(sanitize.Text(row.NameUK), sanitize.Text(row.NameRU))).Text
	out.Name = name
	if name == "" {
		return skip(out, ReasonNoName, "")
	}
	if utf8.RuneCountInString(name) < e.cfg.MinNameLength {
		return skip(out, ReasonShortName, fmt.Sprintf("%d characters", utf8.RuneCountInString(name)))
	}

	category, ok := e.resolver.ResolveCategory(name, sanitize.Text(row.CategoryLabel))
	if !ok {
		return skip(out, ReasonUnresolvableCategory, string(category.Rule))
	}
	out.Category = category.Name

	existingID, found := seen.Product(name)
	if !found {
		existing, err := e.store.FindProductByName(ctx, name)
		switch {
		case err == nil:
			existingID, found = existing.ID, true
		case !errors.Is(err, model.ErrNotFound):
			return fail(out, "name", err)
		}
	}
	if found && !opts.UpdateExisting {
		return skip(out, ReasonDuplicateName, "")
	}

	product := e.buildProduct(row, name, &out)
	out.Brand = taxonomy.ResolveBrand(sanitize.Text(row.BrandLabel), name)

	if opts.Preview {
		return e.preview(ctx, out, name, found, seen)
	}

	cat, created, err := e.store.FindOrCreateCategory(ctx, model.Category{
		Name:        category.Name,
		Description: taxonomy.CategoryDescription(category.Name),
		IsActive:    true,
	})
	if err != nil {
		return fail(out, "category", err)
	}
	if created {
		out.CategoryCreated = true
		e.recorder.ObserveCreated("category")
	}

	brand, created, err := e.store.FindOrCreateBrand(ctx, model.Brand{
		Name:        out.Brand,
		Description: taxonomy.BrandDescription(out.Brand, product.Country),
		Country:     product.Country,
		IsActive:    true,
	})
	if err != nil {
		return fail(out, "brand", err)
	}
	if created {
		out.BrandCreated = true
		e.recorder.ObserveCreated("brand")
	}

	product.CategoryID = cat.ID
	product.BrandID = brand.ID
	product.UpdatedAt = e.now()

	attach := true
	if found {
		product.ID = existingID
		if err := e.store.UpdateProduct(ctx, product); err != nil {
			return fail(out, "product", err)
		}
		out.Status = StatusUpdated

		n, err := e.store.CountImages(ctx, product.ID)
		if err != nil {
			out.warn(ReasonPersistenceFailure, "count images: "+err.Error())
		}
		attach = err == nil && n == 0
	} else {
		product.ID = uuid.New()
		product.CreatedAt = product.UpdatedAt
		product.InStock = true
		if err := e.store.CreateProduct(ctx, product); err != nil {
			return fail(out, "product", err)
		}
		out.Status = StatusCreated
	}
	out.ProductID = product.ID
	seen.AddProduct(name, product.ID)

	if attach && e.images != nil && row.ImageURLs != "" {
		e.attachImages(ctx, &out, name, row.ImageURLs)
	}
	return out
}

func (e *Engine) buildProduct(row model.RawRow, name string, out *Outcome) model.Product {
	p := model.Product{
		Name:    name,
		Model:   sanitize.Text(row.ProductCode),
		Country: sanitize.Text(row.Country),
	}

	price, err := ParsePrice(row.Price)
	if err != nil {
		out.warn(ReasonInvalidPrice, err.Error())
	}
	p.Price = price

	p.Description = e.description(row)
	if p.Description == "" {
		p.Description = defaultDescription(name)
	}

	power, efficiency, warranty := TechFields(row.Characteristics)
	p.Power = e.normalizer.Orthography(power)
	p.Efficiency = e.normalizer.Orthography(efficiency)
	p.Warranty = e.normalizer.Normalize(warranty).Text
	return p
}

func (e *Engine) description(row model.RawRow) string {
	for _, raw := range []string{row.DescriptionUK, row.DescriptionRU} {
		text := sanitize.Text(raw)
		if !longEnough(text) {
			continue
		}
		if desc := e.normalizer.Description(text); desc != "" {
			return desc
		}
	}
	return ""
}

func (e *Engine) preview(ctx context.Context, out Outcome, name string, found bool, seen *SeenNames) Outcome {
	if _, err := e.store.FindCategoryByName(ctx, out.Category); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fail(out, "category", err)
		}
		out.CategoryCreated = seen.MarkCategory(out.Category)
	}
	if _, err := e.store.FindBrandByName(ctx, out.Brand); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return fail(out, "brand", err)
		}
		out.BrandCreated = seen.MarkBrand(out.Brand)
	}

	out.Status = StatusCreated
	if found {
		out.Status = StatusUpdated
	}
	seen.AddProduct(name, uuid.Nil)
	return out
}

func (e *Engine) attachImages(ctx context.Context, out *Outcome, name, urls string) {
	res := e.images.Attach(ctx, out.ProductID, name, urls)
	out.ImagesAttached = res.Attached
	for _, f := range res.Failures {
		reason := ReasonFetchFailure
		if f.Stage == images.StageStore {
			reason = ReasonPersistenceFailure
		}
		out.warn(reason, fmt.Sprintf("%s: %v", f.URL, f.Err))
	}
	e.recorder.ObserveImages(res.Attached, len(res.Failures))
}

func skip(out Outcome, reason Reason, detail string) Outcome {
	out.Status = StatusSkipped
	out.Reason = reason
	out.Detail = detail
	return out
}

func fail(out Outcome, field string, err error) Outcome {
	out.Status = StatusFailed
	out.Reason = ReasonPersistenceFailure
	out.Field = field
	out.Err = err
	return out
}
