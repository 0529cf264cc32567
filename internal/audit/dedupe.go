package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"solarcatalog/internal/model"
)

// DedupeStore is what duplicate removal reads and deletes.
type DedupeStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Duplicate is a product removed in favour of an older one with the same name.
type Duplicate struct {
	ID   uuid.UUID
	Name string
	Kept uuid.UUID
}

type DedupeReport struct {
	Scanned  int
	Groups   int
	Removed  []Duplicate
	Failures int
}

type Deduper struct {
	log *slog.Logger
}

func NewDeduper(log *slog.Logger) *Deduper {
	if log == nil {
		log = slog.Default()
	}
	return &Deduper{log: log}
}

// Run deletes every product whose name is already held by an older one.
// The oldest product of each group survives; equal creation times fall back
// to list order. dryRun reports the duplicates without deleting.
func (d *Deduper) Run(ctx context.Context, store DedupeStore, dryRun bool) (DedupeReport, error) {
	var rep DedupeReport

	products, err := store.ListProducts(ctx)
	if err != nil {
		return rep, fmt.Errorf("list products: %w", err)
	}
	rep.Scanned = len(products)

	var order []string
	groups := make(map[string][]model.Product)
	for _, p := range products {
		if _, ok := groups[p.Name]; !ok {
			order = append(order, p.Name)
		}
		groups[p.Name] = append(groups[p.Name], p)
	}

	for _, name := range order {
		group := groups[name]
		if len(group) < 2 {
			continue
		}
		rep.Groups++

		keep := group[0]
		for _, p := range group[1:] {
			if p.CreatedAt.Before(keep.CreatedAt) {
				keep = p
			}
		}

		for _, p := range group {
			if p.ID == keep.ID {
				continue
			}
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			if !dryRun {
				if err := store.DeleteProduct(ctx, p.ID); err != nil {
					rep.Failures++
					d.log.Error("delete duplicate failed", "id", p.ID, "name", name, "err", err)
					continue
				}
			}
			rep.Removed = append(rep.Removed, Duplicate{ID: p.ID, Name: name, Kept: keep.ID})
		}
	}

	d.log.Info("dedupe finished",
		"scanned", rep.Scanned,
		"groups", rep.Groups,
		"removed", len(rep.Removed),
		"failures", rep.Failures,
		"dry_run", dryRun)
	return rep, nil
}
