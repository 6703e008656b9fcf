// Package storefront holds the store-level metadata shown on the shop
// profile: name, address, logo and cover image. It shares the storage
// mechanism with the catalog but lives under its own key.
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zenyors/whizcartt-partner/internal/storage"
)

// StorageKey is the key the store settings live under.
const StorageKey = "storeDetails"

var ErrCorruptSettings = errors.New("stored shop settings are corrupt")

// Settings is the shop profile. Logo and CoverImage are data-URI encoded,
// like product images.
type Settings struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Logo       string `json:"logo"`
	CoverImage string `json:"cover_image"`
}

// Store reads and writes the shop settings.
type Store struct {
	storage storage.Storage
}

func NewStore(s storage.Storage) *Store {
	return &Store{storage: s}
}

// Load returns the saved settings, or zero-value Settings when none have
// been saved yet.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	data, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return Settings{}, fmt.Errorf("load shop settings: %w", err)
	}
	if !ok {
		return Settings{}, nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrCorruptSettings, err)
	}
	return settings, nil
}

func (s *Store) Save(ctx context.Context, settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode shop settings: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save shop settings: %w", err)
	}
	return nil
}
