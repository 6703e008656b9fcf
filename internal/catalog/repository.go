package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zenyors/whizcartt-partner/internal/storage"
)

// StorageKey is the key the product collection lives under.
const StorageKey = "products"

// ErrCorruptCatalog marks a stored collection that exists but does not
// parse. Earlier builds treated this as an empty catalog and silently
// discarded whatever was there; surfacing it lets the caller warn the user
// before anything is overwritten.
var ErrCorruptCatalog = errors.New("stored product catalog is corrupt")

// Repository is the persistence boundary for the product collection. Load
// and Save always move the whole collection so the read-assign-append-write
// sequence in Store stays one auditable unit.
type Repository interface {
	Load(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, products []Product) error
}

// StorageRepository keeps the collection as one JSON array under
// StorageKey in a storage.Storage.
type StorageRepository struct {
	store storage.Storage
}

func NewStorageRepository(store storage.Storage) *StorageRepository {
	return &StorageRepository{store: store}
}

func (r *StorageRepository) Load(ctx context.Context) ([]Product, error) {
	data, ok, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if !ok {
		return []Product{}, nil
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCatalog, err)
	}
	return products, nil
}

func (r *StorageRepository) Save(ctx context.Context, products []Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
