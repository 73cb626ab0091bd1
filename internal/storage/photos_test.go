package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoStore_SaveOpenRemove(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("product-1", strings.NewReader("photo bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	reader, err := store.Open("product-1")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, "photo bytes", string(data))

	require.NoError(t, store.Remove("product-1"))
	_, err = store.Open("product-1")
	assert.Error(t, err)
}

func TestPhotoStore_SaveOverwrites(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("product-1", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = store.Save("product-1", strings.NewReader("second"))
	require.NoError(t, err)

	reader, err := store.Open("product-1")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestPhotoStore_RemoveMissingIsNoError(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("never-stored"))
}
