package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"solarcatalog/internal/config"
	"solarcatalog/internal/db"
	"solarcatalog/internal/fetch"
	"solarcatalog/internal/images"
	"solarcatalog/internal/importer"
	"solarcatalog/internal/language"
	"solarcatalog/internal/lexicon"
	"solarcatalog/internal/media"
	"solarcatalog/internal/observability"
	"solarcatalog/internal/repository"
	"solarcatalog/internal/runlock"
	"solarcatalog/internal/source"
	"solarcatalog/internal/taxonomy"
)

type flags struct {
	products   string
	categories string
	sheet      string
	update     bool
	dryRun     bool
	verbose    bool
	batch      int
}

// go run ./cmd/import -products=export-products.xlsx -categories=export-groups.xlsx
// go run ./cmd/import -products=export-products.xlsx -update -dry-run -verbose
func main() {
	var f flags
	flag.StringVar(&f.products, "products", "", "Prom.ua product export (.xlsx or .csv)")
	flag.StringVar(&f.categories, "categories", "", "category reference file with Назва_групи / Назва_групи_укр")
	flag.StringVar(&f.sheet, "sheet", "Export Products Sheet", "worksheet name; the first sheet is used when missing")
	flag.BoolVar(&f.update, "update", false, "update products that already exist")
	flag.BoolVar(&f.dryRun, "dry-run", false, "report what would change without writing")
	flag.BoolVar(&f.verbose, "verbose", false, "log every skipped or failed row")
	flag.IntVar(&f.batch, "batch", 0, "progress log interval in rows (default IMPORT_BATCH_SIZE)")
	flag.Parse()

	if f.products == "" {
		log.Fatalf("-products is required")
	}

	sum, err := run(f)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	printSummary(sum, f.dryRun)
}

func run(f flags) (importer.Summary, error) {
	var sum importer.Summary

	cfg, err := config.Load()
	if err != nil {
		return sum, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return sum, err
	}
	logger := observability.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RedisURL != "" && !f.dryRun {
		rdb, err := runlock.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return sum, err
		}
		defer rdb.Close()

		lock, err := (&runlock.Locker{Client: rdb}).Acquire(ctx, "import", cfg.Import.LockTTL)
		if err != nil {
			return sum, err
		}
		defer func() {
			if err := lock.Release(context.Background()); err != nil {
				logger.Warn("release lock", "err", err)
			}
		}()
	}

	if !f.dryRun {
		if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
			return sum, err
		}
	}
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return sum, err
	}
	defer pool.Close()

	classifier := language.New(language.Options{
		MinTargetLetters: cfg.Lang.MinTargetLetters,
		SuspectThreshold: cfg.Lang.SuspectThreshold,
	})
	normalizer := lexicon.New(classifier, lexicon.Options{MinSentenceLength: cfg.Lang.MinSentenceLength})

	mapping := taxonomy.NewMapping()
	if f.categories != "" {
		usable := func(s string) bool { return classifier.Classify(s).Language != language.Other }
		if mapping, err = source.LoadCategoryMapping(f.categories, usable); err != nil {
			return sum, err
		}
		logger.Info("category mapping loaded", "labels", mapping.Len())
	}

	repo := repository.New(pool, media.New(cfg.MediaRoot))
	attacher := images.NewAttacher(
		fetch.NewHTTPFetcher(cfg.Images.FetchTimeout),
		repo,
		images.Options{MaxImages: cfg.Images.MaxPerProduct, Interval: cfg.Images.FetchInterval},
		logger,
	)

	metrics := observability.NewMetrics()
	observability.Start(cfg.MetricsPort, metrics)

	engine := importer.NewEngine(repo, normalizer, taxonomy.NewResolver(mapping), attacher,
		importer.Config{MinNameLength: cfg.Import.MinNameLength}, logger).WithRecorder(metrics)

	src, err := source.Open(f.products, f.sheet)
	if err != nil {
		return sum, err
	}
	defer src.Close()

	batch := f.batch
	if batch <= 0 {
		batch = cfg.Import.BatchSize
	}
	return engine.Run(ctx, src, importer.RunOptions{
		UpdateExisting: f.update,
		Preview:        f.dryRun,
		Verbose:        f.verbose,
		BatchSize:      batch,
	})
}

func printSummary(sum importer.Summary, dryRun bool) {
	if dryRun {
		fmt.Println("DRY RUN: nothing was written")
	}
	fmt.Printf("Rows:               %d\n", sum.Total())
	fmt.Printf("Created:            %d\n", sum.Created)
	fmt.Printf("Updated:            %d\n", sum.Updated)
	fmt.Printf("Skipped:            %d\n", sum.Skipped)
	fmt.Printf("Failed:             %d\n", sum.Failed)
	fmt.Printf("Categories created: %d\n", sum.CategoriesCreated)
	fmt.Printf("Brands created:     %d\n", sum.BrandsCreated)
	fmt.Printf("Images attached:    %d\n", sum.ImagesFetched)
	fmt.Printf("Duration:           %s\n", sum.Duration.Round(time.Millisecond))

	by := sum.SkippedBy()
	reasons := make([]string, 0, len(by))
	for r := range by {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Printf("  skipped %-24s %d\n", r, by[importer.Reason(r)])
	}
}
