// Package audit checks stored catalog text for Russian and rewrites it with
// the current normalization rules.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"solarcatalog/internal/language"
	"solarcatalog/internal/model"
)

// Catalog lists what the audit reads.
type Catalog interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
}

type Kind string

const (
	KindProduct  Kind = "product"
	KindCategory Kind = "category"
	KindBrand    Kind = "brand"
)

// Finding is one record whose text did not pass.
type Finding struct {
	Kind    Kind
	ID      uuid.UUID
	Name    string
	Verdict language.Verdict
}

// Definite reports a Russian verdict. Other findings are strict-mode suspects.
func (f Finding) Definite() bool {
	return f.Verdict.Language == language.Other
}

func (f Finding) String() string {
	label := "suspect"
	if f.Definite() {
		label = "russian"
	}
	return fmt.Sprintf("%s %s %q: %s (function words %d, suspicious %d)",
		f.Kind, f.ID, f.Name, label, f.Verdict.FunctionWords, f.Verdict.Suspicious)
}

type Report struct {
	Scanned  map[Kind]int
	Findings []Finding
}

func (r Report) Definite() int {
	n := 0
	for _, f := range r.Findings {
		if f.Definite() {
			n++
		}
	}
	return n
}

func (r Report) Suspect() int { return len(r.Findings) - r.Definite() }

type Auditor struct {
	classifier *language.Classifier
	log        *slog.Logger
}

func NewAuditor(classifier *language.Classifier, log *slog.Logger) *Auditor {
	if log == nil {
		log = slog.Default()
	}
	return &Auditor{classifier: classifier, log: log}
}

// Audit classifies name and description of every product, category and
// brand. strict also reports ambiguous text with many shared words. It
// never writes.
func (a *Auditor) Audit(ctx context.Context, catalog Catalog, strict bool) (Report, error) {
	classifier := a.classifier
	if strict {
		classifier = classifier.Strict()
	}
	rep := Report{Scanned: make(map[Kind]int)}

	check := func(kind Kind, id uuid.UUID, name, description string) {
		rep.Scanned[kind]++
		v := classifier.Classify(strings.TrimSpace(name + " " + description))
		if v.Language != language.Other && !v.Suspect {
			return
		}
		f := Finding{Kind: kind, ID: id, Name: name, Verdict: v}
		a.log.Debug("audit finding", "kind", kind, "name", name, "definite", f.Definite())
		rep.Findings = append(rep.Findings, f)
	}

	products, err := catalog.ListProducts(ctx)
	if err != nil {
		return rep, fmt.Errorf("list products: %w", err)
	}
	for _, p := range products {
		check(KindProduct, p.ID, p.Name, p.Description)
	}

	categories, err := catalog.ListCategories(ctx)
	if err != nil {
		return rep, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		check(KindCategory, c.ID, c.Name, c.Description)
	}

	brands, err := catalog.ListBrands(ctx)
	if err != nil {
		return rep, fmt.Errorf("list brands: %w", err)
	}
	for _, b := range brands {
		check(KindBrand, b.ID, b.Name, b.Description)
	}

	a.log.Info("audit finished",
		"products", rep.Scanned[KindProduct],
		"categories", rep.Scanned[KindCategory],
		"brands", rep.Scanned[KindBrand],
		"definite", rep.Definite(),
		"suspect", rep.Suspect())
	return rep, nil
}
