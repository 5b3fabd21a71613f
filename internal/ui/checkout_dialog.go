package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/checkout"
	"github.com/maisonlux/boutique/internal/config"
	"github.com/maisonlux/boutique/internal/model"
)

// CheckoutDialog is the modal checkout form with contact fields,
// shipping address, payment selection and the order summary.
type CheckoutDialog struct {
	window       fyne.Window
	localization *Localization
	settings     *config.Settings

	cartSvc     cart.Cart
	checkoutSvc checkout.Processor

	popup *widget.PopUp

	emailEntry     *widget.Entry
	firstNameEntry *widget.Entry
	lastNameEntry  *widget.Entry
	addressEntry   *widget.Entry
	cityEntry      *widget.Entry
	zipEntry       *widget.Entry
	paymentRadio   *widget.RadioGroup

	summaryBox *fyne.Container
	errorLabel *widget.Label
	submitBtn  *widget.Button
	closeBtn   *widget.Button
	progress   *widget.ProgressBarInfinite

	submitting bool
}

// NewCheckoutDialog creates the checkout dialog. It is built once and
// reused across openings; Show rebuilds the order summary.
func NewCheckoutDialog(window fyne.Window, localization *Localization, settings *config.Settings,
	cartSvc cart.Cart, checkoutSvc checkout.Processor) *CheckoutDialog {

	cd := &CheckoutDialog{
		window:       window,
		localization: localization,
		settings:     settings,
		cartSvc:      cartSvc,
		checkoutSvc:  checkoutSvc,
	}
	cd.createUI()
	return cd
}

func (cd *CheckoutDialog) createUI() {
	loc := cd.localization

	cd.emailEntry = widget.NewEntry()
	cd.emailEntry.SetPlaceHolder(loc.GetText(KeyEmail))
	cd.firstNameEntry = widget.NewEntry()
	cd.firstNameEntry.SetPlaceHolder(loc.GetText(KeyFirstName))
	cd.lastNameEntry = widget.NewEntry()
	cd.lastNameEntry.SetPlaceHolder(loc.GetText(KeyLastName))
	cd.addressEntry = widget.NewEntry()
	cd.addressEntry.SetPlaceHolder(loc.GetText(KeyAddress))
	cd.cityEntry = widget.NewEntry()
	cd.cityEntry.SetPlaceHolder(loc.GetText(KeyCity))
	cd.zipEntry = widget.NewEntry()
	cd.zipEntry.SetPlaceHolder(loc.GetText(KeyZipCode))

	cd.paymentRadio = widget.NewRadioGroup(
		[]string{loc.GetText(KeyCreditCard), loc.GetText(KeyPayPal)}, nil)

	cd.summaryBox = container.NewVBox()

	cd.errorLabel = widget.NewLabel("")
	cd.errorLabel.Importance = widget.DangerImportance
	cd.errorLabel.Wrapping = fyne.TextWrapWord
	cd.errorLabel.Hide()

	cd.progress = widget.NewProgressBarInfinite()
	cd.progress.Hide()

	cd.submitBtn = widget.NewButton(loc.GetText(KeyPlaceOrder), cd.onSubmit)
	cd.submitBtn.Importance = widget.HighImportance

	cd.closeBtn = widget.NewButton(loc.GetText(KeyContinueShopping), cd.Hide)

	title := widget.NewLabel(loc.GetText(KeyCheckoutTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	contactTitle := widget.NewLabel(loc.GetText(KeyContactInfo))
	contactTitle.TextStyle = fyne.TextStyle{Bold: true}
	shippingTitle := widget.NewLabel(loc.GetText(KeyShippingAddress))
	shippingTitle.TextStyle = fyne.TextStyle{Bold: true}
	paymentTitle := widget.NewLabel(loc.GetText(KeyPaymentMethod))
	paymentTitle.TextStyle = fyne.TextStyle{Bold: true}
	summaryTitle := widget.NewLabel(loc.GetText(KeyOrderSummary))
	summaryTitle.TextStyle = fyne.TextStyle{Bold: true}

	form := container.NewVBox(
		contactTitle,
		cd.emailEntry,
		container.NewGridWithColumns(2, cd.firstNameEntry, cd.lastNameEntry),
		shippingTitle,
		cd.addressEntry,
		container.NewGridWithColumns(2, cd.cityEntry, cd.zipEntry),
		paymentTitle,
		cd.paymentRadio,
		summaryTitle,
		cd.summaryBox,
		cd.errorLabel,
		cd.progress,
	)

	buttons := container.NewGridWithColumns(2, cd.closeBtn, cd.submitBtn)

	content := container.NewBorder(title, buttons, nil, nil, container.NewVScroll(form))

	cd.popup = widget.NewModalPopUp(content, cd.window.Canvas())
	cd.popup.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// Show opens the dialog with a fresh order summary and the default
// payment method from settings.
func (cd *CheckoutDialog) Show() {
	cd.errorLabel.Hide()
	cd.setSubmitting(false)
	cd.rebuildSummary()

	if cd.settings.GetDefaultPayment() == model.PaymentPayPal {
		cd.paymentRadio.SetSelected(cd.localization.GetText(KeyPayPal))
	} else {
		cd.paymentRadio.SetSelected(cd.localization.GetText(KeyCreditCard))
	}

	cd.popup.Show()
}

// Hide closes the dialog unless a submission is in flight.
func (cd *CheckoutDialog) Hide() {
	if cd.submitting {
		return
	}
	cd.popup.Hide()
}

// rebuildSummary refreshes the per-line and totals display from the cart.
func (cd *CheckoutDialog) rebuildSummary() {
	cd.summaryBox.RemoveAll()

	items := cd.cartSvc.Items()
	for _, item := range items {
		name := widget.NewLabel(fmt.Sprintf("%s "+LineQuantityFormat, item.Name, item.Quantity))
		name.Truncation = fyne.TextTruncateEllipsis
		total := widget.NewLabel(formatMoney(item.LineTotal()))
		total.Alignment = fyne.TextAlignTrailing
		cd.summaryBox.Add(container.NewBorder(nil, nil, nil, total, name))
	}

	totals := cd.cartSvc.Totals()
	loc := cd.localization

	shippingText := formatMoney(totals.Shipping)
	if totals.Shipping == 0 {
		shippingText = FreeShippingLabel
	}

	cd.summaryBox.Add(widget.NewSeparator())
	cd.summaryBox.Add(summaryLine(loc.GetText(KeySubtotal), formatMoney(totals.Subtotal), false))
	cd.summaryBox.Add(summaryLine(loc.GetText(KeyShipping), shippingText, false))
	cd.summaryBox.Add(summaryLine(loc.GetText(KeyTax), formatMoney(totals.Tax), false))
	cd.summaryBox.Add(summaryLine(loc.GetText(KeyTotal), formatMoney(totals.Total), true))
	cd.summaryBox.Refresh()
}

func summaryLine(label, value string, bold bool) fyne.CanvasObject {
	l := widget.NewLabel(label)
	v := widget.NewLabel(value)
	v.Alignment = fyne.TextAlignTrailing
	if bold {
		l.TextStyle = fyne.TextStyle{Bold: true}
		v.TextStyle = fyne.TextStyle{Bold: true}
	}
	return container.NewBorder(nil, nil, nil, v, l)
}

// selectedPayment maps the radio selection back to the payment method.
func (cd *CheckoutDialog) selectedPayment() model.PaymentMethod {
	if cd.paymentRadio.Selected == cd.localization.GetText(KeyPayPal) {
		return model.PaymentPayPal
	}
	return model.PaymentCard
}

func (cd *CheckoutDialog) onSubmit() {
	form := model.CheckoutForm{
		Email:     cd.emailEntry.Text,
		FirstName: cd.firstNameEntry.Text,
		LastName:  cd.lastNameEntry.Text,
		Address:   cd.addressEntry.Text,
		City:      cd.cityEntry.Text,
		ZipCode:   cd.zipEntry.Text,
		Payment:   cd.selectedPayment(),
	}

	if err := cd.checkoutSvc.ValidateForm(form); err != nil {
		cd.showError(err)
		return
	}

	if _, err := cd.checkoutSvc.Submit(form); err != nil {
		cd.showError(err)
		return
	}

	cd.setSubmitting(true)
}

func (cd *CheckoutDialog) showError(err error) {
	var fieldErr *checkout.FieldError
	if errors.As(err, &fieldErr) {
		cd.errorLabel.SetText(fieldErr.Reason)
	} else {
		cd.errorLabel.SetText(err.Error())
	}
	cd.errorLabel.Show()
	cd.errorLabel.Refresh()
}

// setSubmitting toggles the in-flight state: both buttons lock and the
// progress bar shows while the order is processing.
func (cd *CheckoutDialog) setSubmitting(submitting bool) {
	cd.submitting = submitting
	if submitting {
		cd.submitBtn.SetText(cd.localization.GetText(KeyProcessingOrder))
		cd.submitBtn.Disable()
		cd.closeBtn.Disable()
		cd.progress.Show()
		cd.progress.Start()
	} else {
		cd.submitBtn.SetText(cd.localization.GetText(KeyPlaceOrder))
		cd.submitBtn.Enable()
		cd.closeBtn.Enable()
		cd.progress.Stop()
		cd.progress.Hide()
	}
}

// OnOrderFinished reacts to a finished order: success closes the dialog,
// a decline unlocks the form for another attempt.
func (cd *CheckoutDialog) OnOrderFinished(order *model.Order) {
	cd.setSubmitting(false)
	if order.Status == model.OrderStatusCompleted {
		cd.popup.Hide()
	} else {
		cd.errorLabel.SetText(cd.localization.GetText(KeyOrderDeclined))
		cd.errorLabel.Show()
	}
}
