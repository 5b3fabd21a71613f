package model

import "time"

// OrderStatus represents the status of a checkout order
type OrderStatus string

const (
	// OrderStatusPending means the order has been created but not submitted
	OrderStatusPending OrderStatus = "Pending"

	// OrderStatusSubmitting means the order is being processed
	OrderStatusSubmitting OrderStatus = "Submitting"

	// OrderStatusCompleted means the order was placed successfully
	OrderStatusCompleted OrderStatus = "Completed"

	// OrderStatusDeclined means the order was declined by the processor
	OrderStatusDeclined OrderStatus = "Declined"
)

// String returns the string representation of OrderStatus
func (os OrderStatus) String() string {
	return string(os)
}

// IsActive returns true if the order is in flight
func (os OrderStatus) IsActive() bool {
	return os == OrderStatusSubmitting
}

// IsFinished returns true if the order reached a terminal state
func (os OrderStatus) IsFinished() bool {
	return os == OrderStatusCompleted || os == OrderStatusDeclined
}

// PaymentMethod identifies how the customer chose to pay
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
)

// CheckoutForm carries the customer details submitted with an order. The
// values come straight from the checkout dialog inputs.
type CheckoutForm struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	City      string
	ZipCode   string
	Payment   PaymentMethod
}

// Order represents a single checkout attempt. Items and Totals are snapshots
// taken at submit time so later cart edits do not affect an in-flight order.
type Order struct {
	ID         string
	Status     OrderStatus
	Items      []CartItem
	Totals     Totals
	Form       CheckoutForm
	PlacedAt   time.Time
	FinishedAt time.Time
	LastError  string
}

// ItemCount returns the number of units across all line items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
