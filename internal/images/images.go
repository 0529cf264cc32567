// Package images downloads product pictures and attaches them in source order.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	urlSeparators = regexp.MustCompile(`[,;\n]+`)
	unsafeChars   = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
)

var knownExt = map[string]bool{"jpg": true, "jpeg": true, "png": true, "webp": true, "gif": true}

// Fetcher downloads one URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Sink stores image bytes for a product.
type Sink interface {
	AttachPrimaryImage(ctx context.Context, productID uuid.UUID, data []byte, filename, alt string) error
	AppendGalleryImage(ctx context.Context, productID uuid.UUID, data []byte, filename, alt string, order int) error
}

type Stage string

const (
	StageFetch Stage = "fetch"
	StageStore Stage = "store"
)

// Failure is one URL that could not be attached.
type Failure struct {
	URL   string
	Stage Stage
	Err   error
}

type Result struct {
	Attached int
	Primary  string
	Gallery  []string
	Failures []Failure
}

type Options struct {
	MaxImages int
	// Interval is the minimum pause between two fetches.
	Interval time.Duration
}

type Attacher struct {
	fetcher Fetcher
	sink    Sink
	limiter *rate.Limiter
	max     int
	log     *slog.Logger
}

func NewAttacher(fetcher Fetcher, sink Sink, opts Options, log *slog.Logger) *Attacher {
	if opts.MaxImages <= 0 {
		opts.MaxImages = 5
	}
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	return &Attacher{
		fetcher: fetcher,
		sink:    sink,
		limiter: rate.NewLimiter(limit, 1),
		max:     opts.MaxImages,
		log:     log,
	}
}

// Attach fetches up to MaxImages URLs from the delimited list. The first
// image that downloads becomes the primary one, later ones go to the gallery
// with their position as order. A failed URL is recorded and skipped.
func (a *Attacher) Attach(ctx context.Context, productID uuid.UUID, productName, urls string) Result {
	var res Result
	candidates := SplitURLs(urls)
	if len(candidates) > a.max {
		candidates = candidates[:a.max]
	}

	for i, u := range candidates {
		if err := a.limiter.Wait(ctx); err != nil {
			res.Failures = append(res.Failures, Failure{URL: u, Stage: StageFetch, Err: err})
			break
		}

		data, err := a.fetcher.Fetch(ctx, u)
		if err != nil {
			a.log.Warn("image fetch failed", "product", productID, "url", u, "error", err)
			res.Failures = append(res.Failures, Failure{URL: u, Stage: StageFetch, Err: err})
			continue
		}

		filename := FileName(productID, i, u)
		alt := fmt.Sprintf("%s - зображення %d", productName, i+1)
		if res.Primary == "" {
			err = a.sink.AttachPrimaryImage(ctx, productID, data, filename, alt)
		} else {
			err = a.sink.AppendGalleryImage(ctx, productID, data, filename, alt, i)
		}
		if err != nil {
			a.log.Warn("image store failed", "product", productID, "file", filename, "error", err)
			res.Failures = append(res.Failures, Failure{URL: u, Stage: StageStore, Err: err})
			continue
		}

		if res.Primary == "" {
			res.Primary = filename
		} else {
			res.Gallery = append(res.Gallery, filename)
		}
		res.Attached++
	}

	return res
}

// SplitURLs splits on commas, semicolons and newlines and keeps http(s) URLs.
func SplitURLs(s string) []string {
	var out []string
	for _, part := range urlSeparators.Split(s, -1) {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "http://") || strings.HasPrefix(part, "https://") {
			out = append(out, part)
		}
	}
	return out
}

// FileName embeds the product id and the URL position, so names never collide
// between products or within one.
func FileName(productID uuid.UUID, index int, rawURL string) string {
	stem, ext := "", "jpg"
	if u, err := url.Parse(rawURL); err == nil {
		base := path.Base(u.Path)
		if dot := strings.LastIndex(base, "."); dot > 0 {
			if e := strings.ToLower(base[dot+1:]); knownExt[e] {
				ext = e
			}
			base = base[:dot]
		}
		if base != "/" && base != "." {
			stem = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_")
		}
	}

	if stem == "" {
		return fmt.Sprintf("product_%s_%d.jpg", productID, index)
	}
	if len(stem) > 20 {
		stem = stem[:20]
	}
	return fmt.Sprintf("product_%s_%d_%s.%s", productID, index, stem, ext)
}
