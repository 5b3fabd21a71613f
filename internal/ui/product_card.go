package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/model"
)

// formatMoney renders a price with the currency symbol.
func formatMoney(amount float64) string {
	return fmt.Sprintf(MoneyFormat, amount)
}

// ProductCard is a compact catalog entry widget with name, category,
// price and the add / details actions.
type ProductCard struct {
	widget.BaseWidget

	product      model.Product
	localization *Localization

	// UI components
	nameLabel     *widget.Label
	categoryLabel *widget.Label
	priceLabel    *widget.Label
	descLabel     *widget.Label

	// Action buttons
	addBtn     *widget.Button
	detailsBtn *widget.Button

	// Callbacks
	onAdd     func(productID string)
	onDetails func(productID string)
}

// NewProductCard creates a card for a catalog product.
func NewProductCard(product model.Product, localization *Localization) *ProductCard {
	pc := &ProductCard{
		product:      product,
		localization: localization,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.updateFromProduct()
	return pc
}

// SetCallbacks sets the action callbacks.
func (pc *ProductCard) SetCallbacks(onAdd func(productID string), onDetails func(productID string)) {
	pc.onAdd = onAdd
	pc.onDetails = onDetails
}

// UpdateProduct updates the card with new product data. Used by list
// recycling, so every field is refreshed.
func (pc *ProductCard) UpdateProduct(product model.Product) {
	pc.product = product
	pc.updateFromProduct()
	pc.Refresh()
}

// createUI creates the UI components.
func (pc *ProductCard) createUI() {
	pc.nameLabel = widget.NewLabel("")
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Alignment = fyne.TextAlignLeading
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.categoryLabel = widget.NewLabel("")
	pc.categoryLabel.TextStyle = fyne.TextStyle{Italic: true}
	pc.categoryLabel.Alignment = fyne.TextAlignLeading

	pc.priceLabel = widget.NewLabel("")
	pc.priceLabel.Alignment = fyne.TextAlignTrailing
	pc.priceLabel.TextStyle = fyne.TextStyle{Monospace: true}

	pc.descLabel = widget.NewLabel("")
	pc.descLabel.Alignment = fyne.TextAlignLeading
	pc.descLabel.Truncation = fyne.TextTruncateEllipsis

	pc.addBtn = widget.NewButton(pc.localization.GetText(KeyAddToCart), func() {
		// Read the current product dynamically, not from the closure.
		currentID := pc.product.ID
		if pc.onAdd != nil {
			pc.onAdd(currentID)
		}
	})
	pc.addBtn.Importance = widget.HighImportance

	pc.detailsBtn = widget.NewButton(pc.localization.GetText(KeyDetails), func() {
		currentID := pc.product.ID
		if pc.onDetails != nil {
			pc.onDetails(currentID)
		}
	})
	pc.detailsBtn.Importance = widget.MediumImportance
}

// updateFromProduct updates UI components based on product data.
func (pc *ProductCard) updateFromProduct() {
	pc.nameLabel.SetText(pc.product.Name)
	pc.categoryLabel.SetText(pc.product.Category)
	pc.priceLabel.SetText(formatMoney(pc.product.Price))
	pc.descLabel.SetText(pc.product.Description)
}

// CreateRenderer creates the widget renderer.
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	return &productCardRenderer{card: pc}
}

// productCardRenderer renders the product card widget.
type productCardRenderer struct {
	card   *ProductCard
	layout *fyne.Container
}

func (r *productCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	if size.Height < CardMinHeight {
		size.Height = CardMinHeight
	}
	r.layout.Resize(size)
}

func (r *productCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

func (r *productCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *productCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *productCardRenderer) Destroy() {}

// createLayout creates the main layout.
func (r *productCardRenderer) createLayout() {
	pc := r.card

	// Helper to fix width using a transparent rectangle underneath.
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Header: name on the left, fixed-width price pinned right.
	header := container.NewBorder(nil, nil, nil,
		fixedWidth(PriceLabelWidth, pc.priceLabel), pc.nameLabel)

	actionRow := container.NewHBox(pc.detailsBtn, pc.addBtn)

	// Footer: category on the left, actions flush to the right edge.
	footer := container.NewBorder(nil, nil, pc.categoryLabel, actionRow)

	r.layout = container.NewVBox(
		header,
		pc.descLabel,
		footer,
		widget.NewSeparator(),
	)
}
