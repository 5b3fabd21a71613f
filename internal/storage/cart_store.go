package storage

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/model"
)

// KeyCartSnapshot is the preference key holding the serialized cart.
const KeyCartSnapshot = "cart_snapshot"

// CartStore reads and writes the cart snapshot.
type CartStore struct {
	prefs  fyne.Preferences
	logger *zap.Logger
}

// NewCartStore creates a cart store backed by the app's preferences.
func NewCartStore(app fyne.App, logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartStore{prefs: app.Preferences(), logger: logger}
}

// Load reads the stored snapshot. A missing or unparseable value is treated
// as an empty cart; corruption is logged, not surfaced.
func (cs *CartStore) Load() []model.CartItem {
	raw := cs.prefs.String(KeyCartSnapshot)
	if raw == "" {
		return nil
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		cs.logger.Warn("discarding corrupt cart snapshot", zap.Error(err))
		return nil
	}
	return items
}

// Save rewrites the stored snapshot with the given items.
func (cs *CartStore) Save(items []model.CartItem) {
	data, err := json.Marshal(items)
	if err != nil {
		cs.logger.Error("failed to serialize cart snapshot", zap.Error(err))
		return
	}
	cs.prefs.SetString(KeyCartSnapshot, string(data))
}

// Bind rehydrates the cart from the stored snapshot, then subscribes the
// store to cart changes so every committed mutation is persisted. Restore
// does not emit a change event, so binding never rewrites the snapshot on
// startup.
func (cs *CartStore) Bind(c cart.Cart) {
	if items := cs.Load(); len(items) > 0 {
		c.Restore(items)
		cs.logger.Info("cart rehydrated", zap.Int("items", len(items)))
	}
	c.Subscribe(cs.Save)
}
