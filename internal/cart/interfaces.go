package cart

import (
	"github.com/maisonlux/boutique/internal/model"
)

// Cart defines the interface for the shopping cart service.
type Cart interface {
	SetNotifyCallback(func(model.Notification))
	Subscribe(func([]model.CartItem))
	Add(product model.Product, qty int)
	Remove(id string)
	UpdateQuantity(id string, qty int) error
	Clear()
	Reset()
	Items() []model.CartItem
	Get(id string) (model.CartItem, bool)
	Len() int
	Count() int
	Totals() model.Totals
	Snapshot() []model.CartItem
	Restore(items []model.CartItem)
}
