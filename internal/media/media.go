// Package media keeps product image files under a media root.
package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Kind int

const (
	Primary Kind = iota
	Gallery
)

func (k Kind) dir() string {
	if k == Gallery {
		return "products/gallery"
	}
	return "products"
}

// Store writes files below Root. Returned paths are relative to Root and
// use forward slashes.
type Store struct {
	Root string
}

func New(root string) *Store {
	return &Store{Root: root}
}

// Save writes data under the directory of kind. An existing file is never
// replaced: the name gets a numeric suffix until a free one is found.
func (s *Store) Save(kind Kind, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image")
	}
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	dir := filepath.Join(s.Root, filepath.FromSlash(kind.dir()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; i <= 1000; i++ {
		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}
		return path.Join(kind.dir(), candidate), nil
	}
	return "", fmt.Errorf("no free name for %s", name)
}

// Remove deletes a file previously returned by Save. A missing file is not
// an error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
