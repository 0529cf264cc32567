package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"solarcatalog/internal/lexicon"
	"solarcatalog/internal/model"
	"solarcatalog/internal/sanitize"
)

// Store is what renormalization reads and writes.
type Store interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	RenameProduct(ctx context.Context, id uuid.UUID, name, description string) error
}

type Change struct {
	ID             uuid.UUID
	OldName        string
	Name           string
	DescriptionSet bool
}

// Collision is a rename skipped because another product has the name.
type Collision struct {
	ID      uuid.UUID
	OldName string
	Name    string
	Holder  uuid.UUID
}

type RenormalizeReport struct {
	Scanned    int
	Changes    []Change
	Collisions []Collision
	Failures   int
}

type Renormalizer struct {
	normalizer *lexicon.Normalizer
	log        *slog.Logger
}

func NewRenormalizer(normalizer *lexicon.Normalizer, log *slog.Logger) *Renormalizer {
	if log == nil {
		log = slog.Default()
	}
	return &Renormalizer{normalizer: normalizer, log: log}
}

// Run normalizes every stored product again. Names stay unique: a rename
// onto a name already in use is reported and skipped. dryRun computes the
// changes without writing them.
func (r *Renormalizer) Run(ctx context.Context, store Store, dryRun bool) (RenormalizeReport, error) {
	var rep RenormalizeReport

	products, err := store.ListProducts(ctx)
	if err != nil {
		return rep, fmt.Errorf("list products: %w", err)
	}

	owners := make(map[string]uuid.UUID, len(products))
	for _, p := range products {
		owners[p.Name] = p.ID
	}

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Scanned++

		name := r.normalizer.Normalize(sanitize.Text(p.Name)).Text
		if name == "" {
			name = p.Name
		}
		description := p.Description
		if d := r.normalizer.Description(sanitize.Text(p.Description)); d != "" {
			description = d
		}
		if name == p.Name && description == p.Description {
			continue
		}

		if name != p.Name {
			if holder, taken := owners[name]; taken && holder != p.ID {
				rep.Collisions = append(rep.Collisions, Collision{ID: p.ID, OldName: p.Name, Name: name, Holder: holder})
				r.log.Warn("rename collides", "id", p.ID, "name", p.Name, "target", name)
				continue
			}
		}

		change := Change{ID: p.ID, OldName: p.Name, Name: name, DescriptionSet: description != p.Description}
		if !dryRun {
			if err := store.RenameProduct(ctx, p.ID, name, description); err != nil {
				rep.Failures++
				r.log.Error("rename failed", "id", p.ID, "name", p.Name, "err", err)
				continue
			}
		}
		if name != p.Name {
			if owners[p.Name] == p.ID {
				delete(owners, p.Name)
			}
			owners[name] = p.ID
		}
		rep.Changes = append(rep.Changes, change)
	}

	r.log.Info("renormalize finished",
		"scanned", rep.Scanned,
		"changed", len(rep.Changes),
		"collisions", len(rep.Collisions),
		"failures", rep.Failures,
		"dry_run", dryRun)
	return rep, nil
}
