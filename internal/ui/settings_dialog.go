package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/config"
	"github.com/maisonlux/boutique/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	languageSelect *widget.Select
	paymentSelect  *widget.Select
	rememberCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default payment method
	paymentOptions := []string{}
	for _, method := range sd.settings.GetPaymentOptions() {
		paymentOptions = append(paymentOptions, string(method))
	}
	sd.paymentSelect = widget.NewSelect(paymentOptions, nil)

	// Filter persistence across launches
	sd.rememberCheck = widget.NewCheck(loc.GetText(KeyRememberFilters), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewLabel(loc.GetText(KeyDefaultPayment)),
		sd.paymentSelect,

		widget.NewSeparator(),
		sd.rememberCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.paymentSelect.SetSelected(string(sd.settings.GetDefaultPayment()))
	sd.rememberCheck.SetChecked(sd.settings.GetRememberFilters())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if sd.paymentSelect.Selected != "" {
		sd.settings.SetDefaultPayment(model.PaymentMethod(sd.paymentSelect.Selected))
	}
	sd.settings.SetRememberFilters(sd.rememberCheck.Checked)

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
