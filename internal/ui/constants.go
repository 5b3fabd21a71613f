package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCart     = "🛒"
	IconSettings = "⚙"
	IconClose    = "×"
	IconError    = "❌"
	IconSparkle  = "🎉"
	IconSearch   = "🔍"
)

// Text fragments
const (
	MoneyFormat        = "$%.2f"
	FreeShippingLabel  = "FREE"
	QuantityFormat     = "%d"
	ResultCountFormat  = "%d products found"
	CartBadgeFormat    = "%s (%d)"
	LineQuantityFormat = "× %d"
)

// Layout sizing
const (
	CardMinWidth  float32 = 320
	CardMinHeight float32 = 110

	CartRowMinWidth  float32 = 260
	CartRowMinHeight float32 = 64

	PriceLabelWidth    float32 = 90
	QuantityLabelWidth float32 = 36

	CartPanelWidth float32 = 300

	DialogWidth  float32 = 520
	DialogHeight float32 = 560
)

// Notification banner behavior
const (
	NotificationAutoHide = 3 * time.Second
)
