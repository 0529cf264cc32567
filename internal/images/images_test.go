package images

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	fail  map[string]bool
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	if f.fail[url] {
		return nil, errors.New("connection refused")
	}
	return []byte("img:" + url), nil
}

type stored struct {
	filename string
	alt      string
	order    int
	primary  bool
}

type fakeSink struct {
	images  []stored
	failAll bool
}

func (s *fakeSink) AttachPrimaryImage(_ context.Context, _ uuid.UUID, _ []byte, filename, alt string) error {
	if s.failAll {
		return errors.New("disk full")
	}
	s.images = append(s.images, stored{filename: filename, alt: alt, primary: true})
	return nil
}

func (s *fakeSink) AppendGalleryImage(_ context.Context, _ uuid.UUID, _ []byte, filename, alt string, order int) error {
	if s.failAll {
		return errors.New("disk full")
	}
	s.images = append(s.images, stored{filename: filename, alt: alt, order: order})
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAttachOrdersImages(t *testing.T) {
	fetcher := &fakeFetcher{fail: map[string]bool{"https://cdn.example.com/a.jpg": true}}
	sink := &fakeSink{}
	a := NewAttacher(fetcher, sink, Options{MaxImages: 5}, discard())
	id := uuid.New()

	res := a.Attach(context.Background(), id, "Інвертор Deye",
		"https://cdn.example.com/a.jpg; https://cdn.example.com/b.png,\nhttps://cdn.example.com/c.webp")

	assert.Equal(t, 2, res.Attached)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, StageFetch, res.Failures[0].Stage)
	assert.Equal(t, "https://cdn.example.com/a.jpg", res.Failures[0].URL)

	require.Len(t, sink.images, 2)
	assert.True(t, sink.images[0].primary)
	assert.Equal(t, "product_"+id.String()+"_1_b.png", sink.images[0].filename)
	assert.Equal(t, "Інвертор Deye - зображення 2", sink.images[0].alt)
	assert.False(t, sink.images[1].primary)
	assert.Equal(t, 2, sink.images[1].order)
	assert.Equal(t, res.Primary, sink.images[0].filename)
}

func TestAttachCapsCandidates(t *testing.T) {
	fetcher := &fakeFetcher{}
	sink := &fakeSink{}
	a := NewAttacher(fetcher, sink, Options{MaxImages: 2}, discard())

	res := a.Attach(context.Background(), uuid.New(), "Панель", "http://x/1.jpg,http://x/2.jpg,http://x/3.jpg")
	assert.Equal(t, 2, res.Attached)
	assert.Equal(t, []string{"http://x/1.jpg", "http://x/2.jpg"}, fetcher.calls)
}

func TestAttachAllFail(t *testing.T) {
	fetcher := &fakeFetcher{fail: map[string]bool{"https://x/only.jpg": true}}
	sink := &fakeSink{}
	a := NewAttacher(fetcher, sink, Options{}, discard())

	res := a.Attach(context.Background(), uuid.New(), "Панель", "https://x/only.jpg")
	assert.Zero(t, res.Attached)
	assert.Empty(t, res.Primary)
	assert.Len(t, res.Failures, 1)
	assert.Empty(t, sink.images)
}

func TestAttachStoreFailure(t *testing.T) {
	a := NewAttacher(&fakeFetcher{}, &fakeSink{failAll: true}, Options{}, discard())
	res := a.Attach(context.Background(), uuid.New(), "Панель", "https://x/1.jpg")
	require.Len(t, res.Failures, 1)
	assert.Equal(t, StageStore, res.Failures[0].Stage)
}

func TestAttachRespectsCancellation(t *testing.T) {
	fetcher := &fakeFetcher{}
	a := NewAttacher(fetcher, &fakeSink{}, Options{Interval: time.Hour}, discard())
	ctx, cancel := context.WithCancel(context.Background())

	// first fetch uses the burst token, the second has to wait
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	res := a.Attach(ctx, uuid.New(), "Панель", "https://x/1.jpg,https://x/2.jpg,https://x/3.jpg")
	assert.Equal(t, 1, res.Attached)
	assert.Len(t, fetcher.calls, 1)
	require.NotEmpty(t, res.Failures)
}

func TestSplitURLs(t *testing.T) {
	got := SplitURLs(" https://a/1.jpg ;; ftp://b/2.jpg,\n\nhttp://c/3.jpg , not-a-url")
	assert.Equal(t, []string{"https://a/1.jpg", "http://c/3.jpg"}, got)
	assert.Empty(t, SplitURLs(""))
}

func TestFileName(t *testing.T) {
	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn/x/photo.PNG", "product_" + id.String() + "_0_photo.png"},
		{"https://cdn/x/very-long-image-name-from-supplier.jpg", "product_" + id.String() + "_0_very-long-image-name.jpg"},
		{"https://cdn/x/img.tiff", "product_" + id.String() + "_0_img.jpg"},
		{"https://cdn/x/фото 1.jpg", "product_" + id.String() + "_0_1.jpg"},
		{"https://cdn/", "product_" + id.String() + "_0.jpg"},
		{"https://cdn/get?id=5", "product_" + id.String() + "_0_get.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(id, 0, tt.url))
			assert.False(t, strings.ContainsAny(FileName(id, 0, tt.url), " /?"))
		})
	}
}
