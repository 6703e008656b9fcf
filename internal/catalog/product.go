package catalog

import (
	"time"

	"github.com/zenyors/whizcartt-partner/internal/domain/draft"
)

// Product is a persisted catalog entry: a frozen draft plus the identifier
// and creation timestamp assigned at save time. It is never mutated once
// written.
type Product struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Price         string            `json:"price"`
	Stock         int               `json:"stock"`
	Description   string            `json:"description"`
	Categories    []string          `json:"categories"`
	Discount      draft.Discount    `json:"discount"`
	Attributes    []draft.Attribute `json:"attributes"`
	Variations    []draft.Variation `json:"variations"`
	ExpiryDate    string            `json:"expiry_date"`
	ScheduledTime string            `json:"scheduled_time"`
	Images        []string          `json:"images"`
	CreatedAt     time.Time         `json:"created_at"`
}

// freeze copies the draft into a Product. Slices are copied so later edits
// to the (about to be discarded) draft cannot reach the persisted record.
func freeze(d *draft.Draft, id int, now time.Time) Product {
	variations := make([]draft.Variation, len(d.Variations))
	for i, v := range d.Variations {
		variations[i] = draft.Variation{
			Name:    v.Name,
			Options: append([]string(nil), v.Options...),
		}
	}

	return Product{
		ID:            id,
		Name:          d.Name,
		Price:         d.Price,
		Stock:         d.Stock,
		Description:   d.Description,
		Categories:    append([]string(nil), d.Categories...),
		Discount:      d.Discount,
		Attributes:    append([]draft.Attribute(nil), d.Attributes...),
		Variations:    variations,
		ExpiryDate:    d.ExpiryDate,
		ScheduledTime: d.ScheduledTime,
		Images:        append([]string(nil), d.Images...),
		CreatedAt:     now,
	}
}
