package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenyors/whizcartt-partner/internal/storage"
)

func TestStorageRepository_Load_AbsentKeyIsEmptyCatalog(t *testing.T) {
	repo := NewStorageRepository(storage.NewMemoryStorage())

	products, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStorageRepository_Load_CorruptDataIsSurfaced(t *testing.T) {
	backend := storage.NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, StorageKey, []byte("{not json")))

	repo := NewStorageRepository(backend)
	_, err := repo.Load(ctx)

	assert.ErrorIs(t, err, ErrCorruptCatalog)
}

func TestStorageRepository_SaveThenLoad(t *testing.T) {
	repo := NewStorageRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	in := []Product{{ID: 1, Name: "Soap", Price: "49.00"}}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
