package draft

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingRequiredField = errors.New("name and price are required")
	ErrInvalidPrice         = errors.New("price must be a non-negative number")
	ErrInvalidDiscount      = errors.New("discount amount must be a non-negative number")
)

// Draft is an in-progress, unpersisted product being composed in the
// current editing session. All mutation goes through its methods; the
// zero-value slices mean "nothing entered yet".
type Draft struct {
	Name          string      `json:"name"`
	Price         string      `json:"price"`
	Stock         int         `json:"stock"`
	Description   string      `json:"description"`
	Categories    []string    `json:"categories"`
	Discount      Discount    `json:"discount"`
	Attributes    []Attribute `json:"attributes"`
	Variations    []Variation `json:"variations"`
	ExpiryDate    string      `json:"expiry_date"`
	ScheduledTime string      `json:"scheduled_time"`
	Images        []string    `json:"images"`
}

// New creates an empty draft. The discount rule starts disabled with the
// percentage kind preselected.
func New() *Draft {
	return &Draft{
		Discount: Discount{Kind: DiscountPercentage},
	}
}

func (d *Draft) SetName(name string)        { d.Name = name }
func (d *Draft) SetPrice(price string)      { d.Price = price }
func (d *Draft) SetDescription(desc string) { d.Description = desc }
func (d *Draft) SetExpiryDate(date string)  { d.ExpiryDate = date }
func (d *Draft) SetScheduledTime(ts string) { d.ScheduledTime = ts }

// SetStock sets the stock count. Negative values clamp to zero.
func (d *Draft) SetStock(n int) {
	if n < 0 {
		n = 0
	}
	d.Stock = n
}

func (d *Draft) IncreaseStock() {
	d.Stock++
}

// DecreaseStock lowers the stock count by one, floored at zero.
func (d *Draft) DecreaseStock() {
	if d.Stock > 0 {
		d.Stock--
	}
}

// ValidateForSubmit checks that the draft can be handed to the catalog
// store. Name and price are the only required fields; price and an enabled
// discount amount must additionally parse as non-negative decimals.
func (d *Draft) ValidateForSubmit() error {
	if d.Name == "" || d.Price == "" {
		return ErrMissingRequiredField
	}
	if err := requireNonNegative(d.Price, ErrInvalidPrice); err != nil {
		return err
	}
	if d.Discount.Enabled {
		if d.Discount.Amount == "" {
			return ErrInvalidDiscount
		}
		if err := requireNonNegative(d.Discount.Amount, ErrInvalidDiscount); err != nil {
			return err
		}
	}
	return nil
}

func requireNonNegative(raw string, sentinel error) error {
	n, err := decimal.NewFromString(raw)
	if err != nil || n.IsNegative() {
		return sentinel
	}
	return nil
}
