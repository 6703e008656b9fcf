package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zenyors/whizcartt-partner/internal/domain/draft"
)

var ErrProductNotFound = errors.New("product not found")

// Store commits finalized drafts to the persisted catalog. Each save is a
// read-assign-append-write sequence over the whole collection: load the
// current products, assign the next identifier, freeze the draft, append,
// write everything back. Nothing durable changes until the final write, so
// a failed save needs no rollback.
//
// Identifier assignment is max(existing)+1 within one process; two
// independent processes saving at the same time can still collide. The
// file backend at least replaces its file atomically, so a torn write
// cannot corrupt the collection.
type Store struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewStore(repo Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{repo: repo, logger: logger, now: time.Now}
}

// Save freezes the draft into a Product with a fresh identifier and
// creation timestamp and appends it to the persisted collection. The draft
// itself is untouched; callers discard it after a successful save.
func (s *Store) Save(ctx context.Context, d *draft.Draft) (*Product, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	product := freeze(d, nextID(products), s.now())
	products = append(products, product)

	if err := s.repo.Save(ctx, products); err != nil {
		return nil, err
	}

	s.logger.Info("product saved",
		zap.Int("id", product.ID),
		zap.String("name", product.Name),
		zap.Int("catalog_size", len(products)),
	)
	return &product, nil
}

// List returns the persisted collection in insertion order.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	return s.repo.Load(ctx)
}

// Delete removes the product with the given id. This is the store-listing
// view's path; the compose flow never deletes.
func (s *Store) Delete(ctx context.Context, id int) error {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i, p := range products {
		if p.ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := s.repo.Save(ctx, products); err != nil {
				return err
			}
			s.logger.Info("product deleted", zap.Int("id", id))
			return nil
		}
	}
	return ErrProductNotFound
}

// nextID is one past the highest existing identifier, or 1 for an empty
// catalog. Ids of deleted products can be reused; only uniqueness within
// the current collection is promised.
func nextID(products []Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
