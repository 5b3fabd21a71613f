package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/catalog"
	"github.com/maisonlux/boutique/internal/checkout"
	"github.com/maisonlux/boutique/internal/config"
	"github.com/maisonlux/boutique/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	catalogSvc  catalog.Catalog
	cartSvc     cart.Cart
	checkoutSvc checkout.Processor

	// Filter bar
	searchEntry    *widget.Entry
	categorySelect *widget.Select
	resultLabel    *widget.Label

	// Product list
	productList *widget.List
	filtered    []model.Product

	// Cart panel
	cartTitle   *widget.Label
	cartList    *widget.List
	cartEmpty   *widget.Label
	cartItems   []model.CartItem
	clearBtn    *widget.Button
	checkoutBtn *widget.Button

	subtotalValue *widget.Label
	shippingValue *widget.Label
	taxValue      *widget.Label
	totalValue    *widget.Label
	freeShipping  *widget.Label

	notifier       *Notifier
	checkoutDialog *CheckoutDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalogSvc catalog.Catalog, cartSvc cart.Cart, checkoutSvc checkout.Processor) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		catalogSvc:   catalogSvc,
		cartSvc:      cartSvc,
		checkoutSvc:  checkoutSvc,
		notifier:     NewNotifier(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service events into the UI. Cart changes may arrive from the
	// checkout goroutine, so widget updates go through fyne.Do.
	ui.cartSvc.SetNotifyCallback(ui.notifier.Show)
	ui.cartSvc.Subscribe(ui.onCartChanged)
	ui.checkoutSvc.SetUpdateCallback(ui.onOrderUpdate)

	ui.setupUI()
	ui.restoreFilters()
	ui.applyFilters()

	// The cart may already hold a restored snapshot.
	ui.cartItems = ui.cartSvc.Items()
	ui.refreshCartPanel()

	window.SetOnClosed(func() {
		ui.checkoutSvc.Close()
		ui.notifier.Stop()
	})

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Search entry
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = func(string) {
		ui.applyFilters()
	}

	// Category selector
	ui.categorySelect = widget.NewSelect(ui.catalogSvc.Categories(), func(string) {
		ui.applyFilters()
	})
	ui.categorySelect.Selected = catalog.CategoryAll

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.TextStyle = fyne.TextStyle{Italic: true}

	filterBar := container.NewBorder(nil, nil, settingsBtn,
		ui.categorySelect, ui.searchEntry)
	topPanel := container.NewVBox(filterBar, ui.notifier.Object(), ui.resultLabel)

	// Product list
	ui.productList = widget.NewList(
		func() int {
			return len(ui.filtered)
		},
		func() fyne.CanvasObject { return ui.createProductItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateProductItem(id, obj) },
	)

	// Cart panel
	ui.cartTitle = widget.NewLabel("")
	ui.cartTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.cartEmpty = widget.NewLabel(ui.localization.GetText(KeyCartEmpty))
	ui.cartEmpty.Alignment = fyne.TextAlignCenter

	ui.cartList = widget.NewList(
		func() int {
			return len(ui.cartItems)
		},
		func() fyne.CanvasObject { return ui.createCartItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateCartItem(id, obj) },
	)

	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearAll), ui.onClearCart)
	ui.clearBtn.Importance = widget.LowImportance

	ui.checkoutBtn = widget.NewButton(ui.localization.GetText(KeyProceedCheckout), ui.onProceedCheckout)
	ui.checkoutBtn.Importance = widget.HighImportance

	ui.subtotalValue = widget.NewLabel("")
	ui.subtotalValue.Alignment = fyne.TextAlignTrailing
	ui.shippingValue = widget.NewLabel("")
	ui.shippingValue.Alignment = fyne.TextAlignTrailing
	ui.taxValue = widget.NewLabel("")
	ui.taxValue.Alignment = fyne.TextAlignTrailing
	ui.totalValue = widget.NewLabel("")
	ui.totalValue.Alignment = fyne.TextAlignTrailing
	ui.totalValue.TextStyle = fyne.TextStyle{Bold: true}

	ui.freeShipping = widget.NewLabel(IconSparkle + " " + ui.localization.GetText(KeyFreeShipping))
	ui.freeShipping.Hide()

	totalsBox := container.NewVBox(
		widget.NewSeparator(),
		totalsLine(ui.localization.GetText(KeySubtotal), ui.subtotalValue),
		totalsLine(ui.localization.GetText(KeyShipping), ui.shippingValue),
		totalsLine(ui.localization.GetText(KeyTax), ui.taxValue),
		totalsLine(ui.localization.GetText(KeyTotal), ui.totalValue),
		ui.freeShipping,
		ui.checkoutBtn,
	)

	cartHeader := container.NewBorder(nil, nil, nil, ui.clearBtn, ui.cartTitle)
	cartCenter := container.NewStack(ui.cartList, ui.cartEmpty)
	cartPanel := container.NewBorder(cartHeader, totalsBox, nil, nil, cartCenter)

	split := container.NewHSplit(ui.productList, cartPanel)
	split.SetOffset(0.65)

	content := container.NewBorder(topPanel, nil, nil, nil, split)
	ui.window.SetContent(content)

	ui.checkoutDialog = NewCheckoutDialog(ui.window, ui.localization, ui.settings, ui.cartSvc, ui.checkoutSvc)
}

func totalsLine(label string, value *widget.Label) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, value)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.cartEmpty.SetText(ui.localization.GetText(KeyCartEmpty))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearAll))
	ui.checkoutBtn.SetText(ui.localization.GetText(KeyProceedCheckout))
	ui.freeShipping.SetText(IconSparkle + " " + ui.localization.GetText(KeyFreeShipping))
	ui.productList.Refresh()
	ui.cartList.Refresh()
	ui.refreshCartPanel()
	ui.applyFilters()
}

// restoreFilters brings back the last search and category when the user
// opted into filter persistence.
func (ui *RootUI) restoreFilters() {
	if !ui.settings.GetRememberFilters() {
		return
	}
	if term := ui.settings.GetLastSearch(); term != "" {
		ui.searchEntry.SetText(term)
	}
	if category := ui.settings.GetLastCategory(); category != "" {
		for _, known := range ui.catalogSvc.Categories() {
			if known == category {
				ui.categorySelect.Selected = category
				break
			}
		}
	}
}

// applyFilters recomputes the visible products from the search term and
// selected category.
func (ui *RootUI) applyFilters() {
	term := ui.searchEntry.Text
	category := ui.categorySelect.Selected
	if category == "" {
		category = catalog.CategoryAll
	}

	ui.filtered = ui.catalogSvc.Filter(term, category)
	ui.resultLabel.SetText(fmt.Sprintf(ResultCountFormat, len(ui.filtered)))
	ui.productList.Refresh()

	if ui.settings.GetRememberFilters() {
		ui.settings.SetLastSearch(term)
		ui.settings.SetLastCategory(category)
	}
}

// createProductItem creates a new product card for list recycling
func (ui *RootUI) createProductItem() fyne.CanvasObject {
	card := NewProductCard(model.Product{}, ui.localization)
	card.SetCallbacks(ui.onAddToCart, ui.onShowDetails)
	return card
}

// updateProductItem updates a recycled product card with current data
func (ui *RootUI) updateProductItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.filtered) {
		return
	}
	card, ok := obj.(*ProductCard)
	if !ok {
		return
	}
	card.UpdateProduct(ui.filtered[id])
}

// createCartItem creates a new cart row for list recycling
func (ui *RootUI) createCartItem() fyne.CanvasObject {
	row := NewCartRow(model.CartItem{}, ui.localization)
	row.SetCallbacks(ui.onQuantityChange, ui.onRemoveFromCart)
	return row
}

// updateCartItem updates a recycled cart row with current data
func (ui *RootUI) updateCartItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.cartItems) {
		return
	}
	row, ok := obj.(*CartRow)
	if !ok {
		return
	}
	row.UpdateItem(ui.cartItems[id])
}

// onAddToCart handles the add-to-cart action from a product card
func (ui *RootUI) onAddToCart(productID string) {
	product, ok := ui.catalogSvc.Get(productID)
	if !ok {
		return
	}
	ui.cartSvc.Add(product, 1)
}

// onShowDetails opens the product details dialog
func (ui *RootUI) onShowDetails(productID string) {
	product, ok := ui.catalogSvc.Get(productID)
	if !ok {
		return
	}
	ShowProductDialog(ui.window, product, ui.localization, ui.onAddToCart)
}

// onQuantityChange handles the +/- steppers on a cart row
func (ui *RootUI) onQuantityChange(productID string, quantity int) {
	if err := ui.cartSvc.UpdateQuantity(productID, quantity); err != nil {
		// The service already raised an error notification.
		return
	}
}

// onRemoveFromCart handles the remove action on a cart row
func (ui *RootUI) onRemoveFromCart(productID string) {
	ui.cartSvc.Remove(productID)
}

// onClearCart asks for confirmation before emptying the cart
func (ui *RootUI) onClearCart() {
	if ui.cartSvc.Len() == 0 {
		return
	}
	dialog.ShowConfirm(
		ui.localization.GetText(KeyClearAll),
		ui.localization.GetText(KeyCartEmptyConfirm),
		func(confirmed bool) {
			if confirmed {
				ui.cartSvc.Clear()
			}
		},
		ui.window,
	)
}

// onProceedCheckout opens the checkout dialog
func (ui *RootUI) onProceedCheckout() {
	ui.checkoutDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	settingsDialog := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	settingsDialog.Show()
}

// onCartChanged is the cart subscription callback. It may run on the
// checkout goroutine, so all widget access is marshalled to the UI thread.
func (ui *RootUI) onCartChanged(items []model.CartItem) {
	fyne.Do(func() {
		ui.cartItems = items
		ui.refreshCartPanel()
	})
}

// refreshCartPanel updates the cart list, totals and buttons.
func (ui *RootUI) refreshCartPanel() {
	ui.cartTitle.SetText(fmt.Sprintf(CartBadgeFormat,
		IconCart+" "+ui.localization.GetText(KeyCart), ui.cartSvc.Count()))

	if len(ui.cartItems) == 0 {
		ui.cartEmpty.Show()
		ui.checkoutBtn.Disable()
		ui.clearBtn.Disable()
	} else {
		ui.cartEmpty.Hide()
		ui.checkoutBtn.Enable()
		ui.clearBtn.Enable()
	}
	ui.cartList.Refresh()

	totals := ui.cartSvc.Totals()
	ui.subtotalValue.SetText(formatMoney(totals.Subtotal))
	if totals.Shipping == 0 {
		ui.shippingValue.SetText(FreeShippingLabel)
	} else {
		ui.shippingValue.SetText(formatMoney(totals.Shipping))
	}
	ui.taxValue.SetText(formatMoney(totals.Tax))
	ui.totalValue.SetText(formatMoney(totals.Total))

	if totals.FreeShipping() {
		ui.freeShipping.Show()
	} else {
		ui.freeShipping.Hide()
	}
}

// onOrderUpdate handles order status changes from the checkout service.
// Updates arrive on the processing goroutine.
func (ui *RootUI) onOrderUpdate(order *model.Order) {
	if order == nil || !order.Status.IsFinished() {
		return
	}
	fyne.Do(func() {
		ui.checkoutDialog.OnOrderFinished(order)
	})

	switch order.Status {
	case model.OrderStatusCompleted:
		ui.notifier.Show(model.Success(ui.localization.GetText(KeyOrderSuccess)))
	case model.OrderStatusDeclined:
		ui.notifier.Show(model.Error(ui.localization.GetText(KeyOrderDeclined)))
	}
}
