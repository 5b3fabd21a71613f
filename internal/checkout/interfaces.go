package checkout

import (
	"github.com/maisonlux/boutique/internal/model"
)

// Processor defines the interface for the checkout service.
type Processor interface {
	SetUpdateCallback(func(*model.Order))
	ValidateForm(form model.CheckoutForm) error
	Submit(form model.CheckoutForm) (*model.Order, error)
	CurrentOrder() (*model.Order, bool)
	Close()
}
