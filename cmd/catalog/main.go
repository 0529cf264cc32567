package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"solarcatalog/internal/audit"
	"solarcatalog/internal/config"
	"solarcatalog/internal/db"
	"solarcatalog/internal/export"
	"solarcatalog/internal/language"
	"solarcatalog/internal/lexicon"
	"solarcatalog/internal/media"
	"solarcatalog/internal/observability"
	"solarcatalog/internal/repository"
	"solarcatalog/internal/runlock"
)

// go run ./cmd/catalog -mode=audit -strict
// go run ./cmd/catalog -mode=renormalize -dry-run
// go run ./cmd/catalog -mode=dedupe -dry-run
// go run ./cmd/catalog -mode=export -out=exports/google_merchant.csv
func main() {
	mode := flag.String("mode", "audit", "audit, renormalize, dedupe or export")
	strict := flag.Bool("strict", false, "audit: also report suspect text")
	dryRun := flag.Bool("dry-run", false, "renormalize, dedupe: show changes without writing")
	out := flag.String("out", "exports/google_merchant.csv", "export: output file (.csv or .xlsx)")
	baseURL := flag.String("base-url", "https://greensolartech.com.ua", "export: storefront root URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := observability.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	repo := repository.New(pool, media.New(cfg.MediaRoot))

	classifier := language.New(language.Options{
		MinTargetLetters: cfg.Lang.MinTargetLetters,
		SuspectThreshold: cfg.Lang.SuspectThreshold,
	})

	switch *mode {
	case "audit":
		rep, err := audit.NewAuditor(classifier, logger).Audit(ctx, repo, *strict)
		if err != nil {
			log.Fatalf("audit: %v", err)
		}
		for _, f := range rep.Findings {
			fmt.Println(f)
		}
		fmt.Printf("Russian: %d, suspect: %d\n", rep.Definite(), rep.Suspect())

	case "renormalize":
		if !*dryRun && cfg.RedisURL != "" {
			release := holdLock(ctx, cfg)
			defer release()
		}
		normalizer := lexicon.New(classifier, lexicon.Options{MinSentenceLength: cfg.Lang.MinSentenceLength})
		rep, err := audit.NewRenormalizer(normalizer, logger).Run(ctx, repo, *dryRun)
		if err != nil {
			log.Fatalf("renormalize: %v", err)
		}
		for _, c := range rep.Changes {
			fmt.Printf("%s: %q -> %q\n", c.ID, c.OldName, c.Name)
		}
		for _, c := range rep.Collisions {
			fmt.Printf("skipped %s: %q -> %q is taken by %s\n", c.ID, c.OldName, c.Name, c.Holder)
		}
		fmt.Printf("Scanned: %d, changed: %d, collisions: %d, failures: %d\n",
			rep.Scanned, len(rep.Changes), len(rep.Collisions), rep.Failures)

	case "dedupe":
		if !*dryRun && cfg.RedisURL != "" {
			release := holdLock(ctx, cfg)
			defer release()
		}
		rep, err := audit.NewDeduper(logger).Run(ctx, repo, *dryRun)
		if err != nil {
			log.Fatalf("dedupe: %v", err)
		}
		for _, d := range rep.Removed {
			fmt.Printf("removed %s: %q duplicates %s\n", d.ID, d.Name, d.Kept)
		}
		fmt.Printf("Scanned: %d, duplicate names: %d, removed: %d, failures: %d\n",
			rep.Scanned, rep.Groups, len(rep.Removed), rep.Failures)

	case "export":
		stats, err := export.NewExporter(*baseURL, logger).Export(ctx, repo, *out)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		fmt.Printf("Exported %d products to %s (%d with images, %d featured)\n",
			stats.Total, *out, stats.WithImages, stats.Featured)

	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// holdLock shares the import lock so renormalization never races an import.
func holdLock(ctx context.Context, cfg *config.Config) func() {
	rdb, err := runlock.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	lock, err := (&runlock.Locker{Client: rdb}).Acquire(ctx, "import", cfg.Import.LockTTL)
	if err != nil {
		rdb.Close()
		log.Fatalf("lock: %v", err)
	}
	return func() {
		if err := lock.Release(context.Background()); err != nil {
			log.Printf("release lock: %v", err)
		}
		rdb.Close()
	}
}
