package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/model"
)

// CartRow is a single cart line: product name, line total and the
// quantity / remove controls.
type CartRow struct {
	widget.BaseWidget

	item         model.CartItem
	localization *Localization

	nameLabel  *widget.Label
	totalLabel *widget.Label
	qtyLabel   *widget.Label

	minusBtn  *widget.Button
	plusBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onQuantity func(productID string, quantity int)
	onRemove   func(productID string)
}

// NewCartRow creates a cart line widget.
func NewCartRow(item model.CartItem, localization *Localization) *CartRow {
	cr := &CartRow{
		item:         item,
		localization: localization,
	}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	cr.updateFromItem()
	return cr
}

// SetCallbacks sets the action callbacks.
func (cr *CartRow) SetCallbacks(onQuantity func(productID string, quantity int), onRemove func(productID string)) {
	cr.onQuantity = onQuantity
	cr.onRemove = onRemove
}

// UpdateItem updates the row with new line data. Used by list recycling.
func (cr *CartRow) UpdateItem(item model.CartItem) {
	cr.item = item
	cr.updateFromItem()
	cr.Refresh()
}

func (cr *CartRow) createUI() {
	cr.nameLabel = widget.NewLabel("")
	cr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	cr.totalLabel = widget.NewLabel("")
	cr.totalLabel.Alignment = fyne.TextAlignTrailing
	cr.totalLabel.TextStyle = fyne.TextStyle{Monospace: true}

	cr.qtyLabel = widget.NewLabel("")
	cr.qtyLabel.Alignment = fyne.TextAlignCenter

	cr.minusBtn = widget.NewButton("−", func() {
		current := cr.item
		if cr.onQuantity != nil {
			cr.onQuantity(current.ID, current.Quantity-1)
		}
	})
	cr.minusBtn.Importance = widget.LowImportance

	cr.plusBtn = widget.NewButton("+", func() {
		current := cr.item
		if cr.onQuantity != nil {
			cr.onQuantity(current.ID, current.Quantity+1)
		}
	})
	cr.plusBtn.Importance = widget.LowImportance

	cr.removeBtn = widget.NewButton(IconClose, func() {
		current := cr.item
		if cr.onRemove != nil {
			cr.onRemove(current.ID)
		}
	})
	cr.removeBtn.Importance = widget.DangerImportance
}

func (cr *CartRow) updateFromItem() {
	cr.nameLabel.SetText(cr.item.Name)
	cr.totalLabel.SetText(formatMoney(cr.item.LineTotal()))
	cr.qtyLabel.SetText(fmt.Sprintf(QuantityFormat, cr.item.Quantity))

	// Stepper buttons stop at the quantity bounds.
	if cr.item.Quantity <= model.MinQuantity {
		cr.minusBtn.Disable()
	} else {
		cr.minusBtn.Enable()
	}
	if cr.item.Quantity >= model.MaxQuantity {
		cr.plusBtn.Disable()
	} else {
		cr.plusBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer.
func (cr *CartRow) CreateRenderer() fyne.WidgetRenderer {
	stepper := container.NewHBox(cr.minusBtn, cr.qtyLabel, cr.plusBtn)
	top := container.NewBorder(nil, nil, nil, cr.removeBtn, cr.nameLabel)
	bottom := container.NewBorder(nil, nil, stepper, cr.totalLabel)
	layout := container.NewVBox(top, bottom, widget.NewSeparator())
	return widget.NewSimpleRenderer(layout)
}
