// Package lookup resolves scanned barcodes to product seed data. The real
// dashboard has no product database behind it, so the shipped
// implementation derives a stable mock seed from the barcode itself; the
// interface leaves room for a real lookup service later.
package lookup

import (
	"fmt"
	"hash/fnv"
)

// Seed is the pre-filled product data a barcode resolves to. The editing
// session copies it into the draft as a convenience; none of it is
// required for a save.
type Seed struct {
	Name           string
	Price          string
	Description    string
	AttributeName  string
	AttributeValue string
}

// Lookup resolves a barcode to a product seed. The second return is false
// when the barcode is unknown.
type Lookup interface {
	Lookup(barcode string) (Seed, bool)
}

var mockNames = []string{
	"Classic White Tee",
	"Stainless Water Bottle",
	"Organic Green Tea",
	"Wireless Earbuds",
	"Canvas Tote Bag",
	"Scented Soy Candle",
	"Bamboo Cutting Board",
	"Ceramic Coffee Mug",
}

var mockBrands = []string{
	"Northwind", "Evermart", "Casa Luna", "Trailhead", "Bluefin",
}

// MockLookup deterministically fabricates a seed from the barcode: the
// same code always yields the same product.
type MockLookup struct{}

func NewMockLookup() *MockLookup {
	return &MockLookup{}
}

func (MockLookup) Lookup(barcode string) (Seed, bool) {
	if barcode == "" {
		return Seed{}, false
	}

	h := fnv.New32a()
	h.Write([]byte(barcode))
	sum := h.Sum32()

	name := mockNames[sum%uint32(len(mockNames))]
	brand := mockBrands[(sum>>8)%uint32(len(mockBrands))]
	price := fmt.Sprintf("%d.00", 49+sum%450)

	return Seed{
		Name:           name,
		Price:          price,
		Description:    fmt.Sprintf("%s by %s. Scanned item %s.", name, brand, barcode),
		AttributeName:  "Brand",
		AttributeValue: brand,
	}, true
}
