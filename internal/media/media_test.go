package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	s := New(t.TempDir())

	rel, err := s.Save(Primary, "product_1_0.jpg", []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "products/product_1_0.jpg", rel)

	again, err := s.Save(Primary, "product_1_0.jpg", []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "products/product_1_0_1.jpg", again)

	data, err := os.ReadFile(filepath.Join(s.Root, "products", "product_1_0.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	g, err := s.Save(Gallery, "../../escape.png", []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "products/gallery/escape.png", g)
}

func TestSaveRejects(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Save(Primary, "x.jpg", nil)
	assert.Error(t, err)

	_, err = s.Save(Primary, "", []byte("a"))
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	s := New(t.TempDir())

	rel, err := s.Save(Gallery, "g.webp", []byte("a"))
	require.NoError(t, err)
	require.NoError(t, s.Remove(rel))
	require.NoError(t, s.Remove(rel))
	require.NoError(t, s.Remove(""))

	_, err = os.Stat(filepath.Join(s.Root, "products", "gallery", "g.webp"))
	assert.True(t, os.IsNotExist(err))
}
