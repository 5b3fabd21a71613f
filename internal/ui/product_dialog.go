package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/model"
)

// ShowProductDialog opens the product details modal with the full
// description, feature list and an add-to-cart shortcut.
func ShowProductDialog(window fyne.Window, product model.Product, localization *Localization, onAdd func(productID string)) {
	nameLabel := widget.NewLabel(product.Name)
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	categoryLabel := widget.NewLabel(product.Category + " · " + product.SKU)
	categoryLabel.TextStyle = fyne.TextStyle{Italic: true}

	priceLabel := widget.NewLabel(formatMoney(product.Price))
	priceLabel.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	descLabel := widget.NewLabel(product.Description)
	descLabel.Wrapping = fyne.TextWrapWord

	featuresTitle := widget.NewLabel(localization.GetText(KeyFeatures))
	featuresTitle.TextStyle = fyne.TextStyle{Bold: true}

	featureRows := make([]fyne.CanvasObject, 0, len(product.Features))
	for _, feature := range product.Features {
		featureRows = append(featureRows, widget.NewLabel("• "+feature))
	}

	content := container.NewVBox(
		nameLabel,
		categoryLabel,
		priceLabel,
		widget.NewSeparator(),
		descLabel,
		featuresTitle,
		container.NewVBox(featureRows...),
	)

	d := dialog.NewCustomConfirm(
		product.Name,
		localization.GetText(KeyAddToCart),
		localization.GetText(KeyContinueShopping),
		container.NewVScroll(content),
		func(add bool) {
			if add && onAdd != nil {
				onAdd(product.ID)
			}
		},
		window,
	)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}
