package model

// Pricing rules for the storefront.
const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 1000.0

	// FlatShippingFee is charged for any non-empty order at or below the
	// free-shipping threshold.
	FlatShippingFee = 25.0

	// TaxRate is applied to the subtotal.
	TaxRate = 0.08
)

// Totals are the derived monetary amounts for a cart. They are computed on
// demand and never stored.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// CalculateTotals derives the order totals from a list of cart items.
// Shipping is zero for an empty cart and for subtotals above the
// free-shipping threshold.
func CalculateTotals(items []CartItem) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.LineTotal()
	}
	if t.Subtotal > 0 && t.Subtotal <= FreeShippingThreshold {
		t.Shipping = FlatShippingFee
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}

// FreeShipping reports whether the subtotal qualifies for free shipping.
func (t Totals) FreeShipping() bool {
	return t.Subtotal > FreeShippingThreshold
}
