package cart

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/maisonlux/boutique/internal/model"
)

// ErrQuantityTooHigh is returned when a quantity update exceeds the per-item
// maximum. The state is left unchanged.
var ErrQuantityTooHigh = fmt.Errorf("maximum quantity per item is %d", model.MaxQuantity)

// Service owns the cart state. Items keep insertion order and are unique per
// product id; every quantity stays within [model.MinQuantity, model.MaxQuantity].
type Service struct {
	mu     sync.RWMutex
	items  []model.CartItem
	index  map[string]int // product id -> position in items
	logger *zap.Logger

	onChange []func([]model.CartItem)
	onNotify func(model.Notification) // callback for transient UI notifications
}

// NewService creates an empty cart service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		index:  make(map[string]int),
		logger: logger,
	}
}

// SetNotifyCallback sets the callback for user-facing notifications.
func (s *Service) SetNotifyCallback(callback func(model.Notification)) {
	s.onNotify = callback
}

// Subscribe registers a callback invoked with a snapshot of the items after
// every committed mutation. The storage adapter uses this to persist the cart.
func (s *Service) Subscribe(callback func([]model.CartItem)) {
	s.onChange = append(s.onChange, callback)
}

// Add merges a product into the cart: an existing line accumulates the
// quantity, a new product is appended. Quantities accumulate additively but
// never exceed the per-item maximum. qty values below one count as one.
func (s *Service) Add(product model.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	if pos, exists := s.index[product.ID]; exists {
		s.items[pos].Quantity = model.ClampQuantity(s.items[pos].Quantity + qty)
	} else {
		s.index[product.ID] = len(s.items)
		s.items = append(s.items, model.CartItem{
			Product:  product,
			Quantity: model.ClampQuantity(qty),
		})
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("item added", zap.String("product", product.ID), zap.Int("qty", qty))
	s.notifyChange(snapshot)
	s.notify(model.Success(product.Name + " added to cart"))
}

// Remove deletes the line item with the given product id. Removing an absent
// id is a guarded no-op with no notification.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	pos, exists := s.index[id]
	if !exists {
		s.mu.Unlock()
		s.logger.Debug("remove of absent product ignored", zap.String("product", id))
		return
	}

	name := s.items[pos].Name
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("item removed", zap.String("product", id))
	s.notifyChange(snapshot)
	s.notify(model.Success(name + " removed from cart"))
}

// UpdateQuantity sets the quantity for the matching line item. Values above
// the maximum are rejected with an error notification and no state change;
// values below one and absent ids are silent no-ops.
func (s *Service) UpdateQuantity(id string, qty int) error {
	if qty > model.MaxQuantity {
		s.notify(model.Error(ErrQuantityTooHigh.Error()))
		return ErrQuantityTooHigh
	}
	if qty < model.MinQuantity {
		return nil
	}

	s.mu.Lock()
	pos, exists := s.index[id]
	if !exists {
		s.mu.Unlock()
		return nil
	}
	s.items[pos].Quantity = qty
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("quantity updated", zap.String("product", id), zap.Int("qty", qty))
	s.notifyChange(snapshot)
	return nil
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.mu.Lock()
	s.items = nil
	s.index = make(map[string]int)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("cart cleared")
	s.notifyChange(snapshot)
	s.notify(model.Success("Cart cleared"))
}

// Reset empties the cart without a user notification. Checkout uses it after
// a successful order, where the success message replaces the cleared-cart one.
// Change subscribers still fire so the persisted snapshot is emptied too.
func (s *Service) Reset() {
	s.mu.Lock()
	s.items = nil
	s.index = make(map[string]int)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("cart reset")
	s.notifyChange(snapshot)
}

// Items returns the line items in insertion order.
func (s *Service) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the line item for a product id.
func (s *Service) Get(id string) (model.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, exists := s.index[id]
	if !exists {
		return model.CartItem{}, false
	}
	return s.items[pos], true
}

// Len returns the number of distinct line items.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Count returns the total number of units across all line items. The UI
// shows it on the cart badge.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Totals derives the monetary amounts for the current cart contents.
func (s *Service) Totals() model.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CalculateTotals(s.items)
}

// Snapshot returns a persistable copy of the items in insertion order.
func (s *Service) Snapshot() []model.CartItem {
	return s.Items()
}

// Restore replaces the cart contents from a persisted snapshot. Invariants
// are re-imposed on the way in: duplicate product ids keep the first
// occurrence, quantities are clamped, items without an id are dropped.
// Restore does not emit a change event; it runs once at startup before the
// storage adapter is bound.
func (s *Service) Restore(items []model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.index = make(map[string]int)
	for _, item := range items {
		if item.ID == "" {
			s.logger.Warn("dropping restored item without product id")
			continue
		}
		if _, exists := s.index[item.ID]; exists {
			s.logger.Warn("dropping duplicate restored item", zap.String("product", item.ID))
			continue
		}
		item.Quantity = model.ClampQuantity(item.Quantity)
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}
}

// snapshotLocked copies the item list. Callers must hold at least a read lock.
func (s *Service) snapshotLocked() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// notifyChange invokes the change subscribers outside the state lock.
func (s *Service) notifyChange(snapshot []model.CartItem) {
	for _, callback := range s.onChange {
		callback(snapshot)
	}
}

// notify calls the notification callback if set.
func (s *Service) notify(n model.Notification) {
	if s.onNotify != nil {
		s.onNotify(n)
	}
}
