package config

import (
	"fyne.io/fyne/v2"

	"github.com/maisonlux/boutique/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyDefaultPayment  = "default_payment_method"
	KeyRememberFilters = "remember_filters"
	KeyLastCategory    = "last_category"
	KeyLastSearch      = "last_search"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultPayment         = model.PaymentCard
	DefaultRememberFilters = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultPayment returns the preselected payment method for checkout
func (s *Settings) GetDefaultPayment() model.PaymentMethod {
	method := model.PaymentMethod(s.app.Preferences().String(KeyDefaultPayment))
	if method != model.PaymentCard && method != model.PaymentPayPal {
		s.SetDefaultPayment(DefaultPayment)
		return DefaultPayment
	}
	return method
}

// SetDefaultPayment sets the preselected payment method
func (s *Settings) SetDefaultPayment(method model.PaymentMethod) {
	if method != model.PaymentCard && method != model.PaymentPayPal {
		method = DefaultPayment
	}
	s.app.Preferences().SetString(KeyDefaultPayment, string(method))
}

// GetRememberFilters returns whether search and category filters survive restarts
func (s *Settings) GetRememberFilters() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberFilters, DefaultRememberFilters)
}

// SetRememberFilters sets whether filters survive restarts
func (s *Settings) SetRememberFilters(remember bool) {
	s.app.Preferences().SetBool(KeyRememberFilters, remember)
}

// GetLastCategory returns the category filter from the previous session
func (s *Settings) GetLastCategory() string {
	return s.app.Preferences().String(KeyLastCategory)
}

// SetLastCategory stores the active category filter
func (s *Settings) SetLastCategory(category string) {
	s.app.Preferences().SetString(KeyLastCategory, category)
}

// GetLastSearch returns the search term from the previous session
func (s *Settings) GetLastSearch() string {
	return s.app.Preferences().String(KeyLastSearch)
}

// SetLastSearch stores the active search term
func (s *Settings) SetLastSearch(term string) {
	s.app.Preferences().SetString(KeyLastSearch, term)
}

// GetPaymentOptions returns the available payment methods
func (s *Settings) GetPaymentOptions() []model.PaymentMethod {
	return []model.PaymentMethod{model.PaymentCard, model.PaymentPayPal}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"it":     "Italiano",
		"fr":     "Français",
	}
}
