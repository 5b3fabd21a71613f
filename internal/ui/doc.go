package ui

// Package ui contains the Fyne-based desktop user interface for the storefront.
// It wires user interactions to the cart and checkout services and renders the
// product grid, cart panel, dialogs, and notifications. All UI strings are
// localized via Localization.
