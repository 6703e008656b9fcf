package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenyors/whizcartt-partner/internal/domain/draft"
	"github.com/zenyors/whizcartt-partner/internal/storage"
)

func newTestStore() (*Store, *storage.MemoryStorage) {
	backend := storage.NewMemoryStorage()
	return NewStore(NewStorageRepository(backend), nil), backend
}

func newValidDraft(name string) *draft.Draft {
	d := draft.New()
	d.SetName(name)
	d.SetPrice("49.00")
	return d
}

// ============================================
// Save
// ============================================

func TestStore_Save_FirstProductGetsIDOne(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	product, err := store.Save(ctx, newValidDraft("Soap"))

	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestStore_Save_SequentialIDsAreUnique(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, newValidDraft("Soap"))
		require.NoError(t, err)
	}

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	seen := map[int]bool{}
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestStore_Save_IDIsMaxPlusOneAfterDelete(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Save(ctx, newValidDraft("Soap"))
		require.NoError(t, err)
	}
	require.NoError(t, store.Delete(ctx, 3))

	product, err := store.Save(ctx, newValidDraft("Soap"))

	require.NoError(t, err)
	assert.Equal(t, 3, product.ID)
}

func TestStore_Save_RoundTripsAllDraftFields(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	d := draft.New()
	d.SetName("Soap")
	d.SetPrice("49.00")
	d.SetStock(10)
	d.SetDescription("Lavender bar soap")
	d.SetExpiryDate("2027-01-31")
	d.SetScheduledTime("2026-10-01T09:00")
	d.AddCategory("Groceries")
	d.ToggleDiscount()
	d.SetDiscountKind(draft.DiscountFixed)
	d.SetDiscountAmount("5")
	d.AddAttribute()
	d.SetAttributeName(0, "Scent")
	d.SetAttributeValue(0, "Lavender")
	d.AddVariation()
	d.SetVariationName(0, "Size")
	d.SetOption(0, 0, "Small")
	d.AddOption(0)
	d.SetOption(0, 1, "Large")
	require.NoError(t, d.AddImage("data:image/png;base64,a"))

	saved, err := store.Save(ctx, d)
	require.NoError(t, err)

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Soap", got.Name)
	assert.Equal(t, "49.00", got.Price)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, "Lavender bar soap", got.Description)
	assert.Equal(t, []string{"Groceries"}, got.Categories)
	assert.Equal(t, draft.Discount{Enabled: true, Kind: draft.DiscountFixed, Amount: "5"}, got.Discount)
	assert.Equal(t, []draft.Attribute{{Name: "Scent", Value: "Lavender"}}, got.Attributes)
	assert.Equal(t, []draft.Variation{{Name: "Size", Options: []string{"Small", "Large"}}}, got.Variations)
	assert.Equal(t, "2027-01-31", got.ExpiryDate)
	assert.Equal(t, "2026-10-01T09:00", got.ScheduledTime)
	assert.Equal(t, []string{"data:image/png;base64,a"}, got.Images)
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Second)
}

func TestStore_Save_LaterDraftEditsDoNotReachSavedProduct(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	d := newValidDraft("Soap")
	d.AddCategory("Groceries")
	saved, err := store.Save(ctx, d)
	require.NoError(t, err)

	d.AddCategory("Fashion")
	d.SetName("Changed")

	assert.Equal(t, []string{"Groceries"}, saved.Categories)
	assert.Equal(t, "Soap", saved.Name)
}

func TestStore_Save_WriteFailurePropagates(t *testing.T) {
	store, backend := newTestStore()
	backend.SetErr = assert.AnError

	_, err := store.Save(context.Background(), newValidDraft("Soap"))

	assert.ErrorIs(t, err, assert.AnError)
}

// ============================================
// Delete
// ============================================

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	first, err := store.Save(ctx, newValidDraft("Soap"))
	require.NoError(t, err)
	_, err = store.Save(ctx, newValidDraft("Shampoo"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, first.ID))

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Shampoo", products[0].Name)
}

func TestStore_Delete_UnknownID(t *testing.T) {
	store, _ := newTestStore()

	err := store.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrProductNotFound)
}
