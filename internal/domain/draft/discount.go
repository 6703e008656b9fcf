package draft

// DiscountKind selects how a discount amount is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount is the single optional discount rule on a draft. Amount is kept
// as the raw entered string; numeric validation happens at submit time.
type Discount struct {
	Enabled bool         `json:"enabled"`
	Kind    DiscountKind `json:"kind"`
	Amount  string       `json:"amount"`
}

// ToggleDiscount flips the enabled flag. The amount is kept when disabling
// so re-enabling restores the last-entered value.
func (d *Draft) ToggleDiscount() {
	d.Discount.Enabled = !d.Discount.Enabled
}

func (d *Draft) SetDiscountKind(kind DiscountKind) {
	d.Discount.Kind = kind
}

func (d *Draft) SetDiscountAmount(raw string) {
	d.Discount.Amount = raw
}
