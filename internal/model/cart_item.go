package model

// Quantity bounds for a single cart line item.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// CartItem is one product entry in the cart with its quantity. The embedded
// Product fields are flattened in the persisted JSON snapshot so rehydration
// does not depend on a catalog lookup.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns the price of this line item (unit price times quantity).
func (ci CartItem) LineTotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// ClampQuantity returns qty forced into the [MinQuantity, MaxQuantity] range.
func ClampQuantity(qty int) int {
	if qty < MinQuantity {
		return MinQuantity
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}
