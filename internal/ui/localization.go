package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyCart              = "cart"
	KeyCartEmpty         = "cart_empty"
	KeyCartEmptyConfirm  = "cart_empty_confirm"
	KeyClearAll          = "clear_all"
	KeyAddToCart         = "add_to_cart"
	KeyDetails           = "details"
	KeyRemove            = "remove"
	KeyFeatures          = "features"
	KeySubtotal          = "subtotal"
	KeyShipping          = "shipping"
	KeyTax               = "tax"
	KeyTotal             = "total"
	KeyFreeShipping      = "free_shipping_unlocked"
	KeyProceedCheckout   = "proceed_checkout"
	KeyContinueShopping  = "continue_shopping"
	KeyCheckoutTitle     = "checkout_title"
	KeyContactInfo       = "contact_info"
	KeyShippingAddress   = "shipping_address"
	KeyPaymentMethod     = "payment_method"
	KeyEmail             = "email"
	KeyFirstName         = "first_name"
	KeyLastName          = "last_name"
	KeyAddress           = "address"
	KeyCity              = "city"
	KeyZipCode           = "zip_code"
	KeyCreditCard        = "credit_card"
	KeyPayPal            = "paypal"
	KeyOrderSummary      = "order_summary"
	KeyPlaceOrder        = "place_order"
	KeyProcessingOrder   = "processing_order"
	KeyOrderSuccess      = "order_success"
	KeyOrderDeclined     = "order_declined"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDefaultPayment    = "default_payment"
	KeyRememberFilters   = "remember_filters"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns language codes mapped to display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"it": "Italiano",
		"fr": "Français",
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// initializeTexts sets up all translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Maison Boutique",
		KeySearchPlaceholder: "Search products...",
		KeyCart:              "Shopping Cart",
		KeyCartEmpty:         "Your cart is empty",
		KeyCartEmptyConfirm:  "Remove all items from the cart?",
		KeyClearAll:          "Clear All",
		KeyAddToCart:         "Add to Cart",
		KeyDetails:           "Details",
		KeyRemove:            "Remove",
		KeyFeatures:          "Features",
		KeySubtotal:          "Subtotal",
		KeyShipping:          "Shipping",
		KeyTax:               "Tax",
		KeyTotal:             "Total",
		KeyFreeShipping:      "Free shipping unlocked!",
		KeyProceedCheckout:   "Proceed to Checkout",
		KeyContinueShopping:  "Continue Shopping",
		KeyCheckoutTitle:     "Checkout",
		KeyContactInfo:       "Contact Information",
		KeyShippingAddress:   "Shipping Address",
		KeyPaymentMethod:     "Payment Method",
		KeyEmail:             "Email Address",
		KeyFirstName:         "First Name",
		KeyLastName:          "Last Name",
		KeyAddress:           "Address",
		KeyCity:              "City",
		KeyZipCode:           "ZIP Code",
		KeyCreditCard:        "Credit Card",
		KeyPayPal:            "PayPal",
		KeyOrderSummary:      "Order Summary",
		KeyPlaceOrder:        "Place Order",
		KeyProcessingOrder:   "Processing Order...",
		KeyOrderSuccess:      "Order placed successfully! Thank you for your purchase.",
		KeyOrderDeclined:     "Payment was declined. Please try another payment method.",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDefaultPayment:    "Default Payment Method",
		KeyRememberFilters:   "Remember search and filters",
		KeySettingsSaved:     "Settings saved",
	}

	l.texts["it"] = map[string]string{
		KeyAppTitle:          "Maison Boutique",
		KeySearchPlaceholder: "Cerca prodotti...",
		KeyCart:              "Carrello",
		KeyCartEmpty:         "Il carrello è vuoto",
		KeyCartEmptyConfirm:  "Rimuovere tutti gli articoli dal carrello?",
		KeyClearAll:          "Svuota tutto",
		KeyAddToCart:         "Aggiungi al carrello",
		KeyDetails:           "Dettagli",
		KeyRemove:            "Rimuovi",
		KeyFeatures:          "Caratteristiche",
		KeySubtotal:          "Subtotale",
		KeyShipping:          "Spedizione",
		KeyTax:               "Tasse",
		KeyTotal:             "Totale",
		KeyFreeShipping:      "Spedizione gratuita sbloccata!",
		KeyProceedCheckout:   "Procedi al pagamento",
		KeyContinueShopping:  "Continua lo shopping",
		KeyCheckoutTitle:     "Pagamento",
		KeyContactInfo:       "Informazioni di contatto",
		KeyShippingAddress:   "Indirizzo di spedizione",
		KeyPaymentMethod:     "Metodo di pagamento",
		KeyEmail:             "Indirizzo email",
		KeyFirstName:         "Nome",
		KeyLastName:          "Cognome",
		KeyAddress:           "Indirizzo",
		KeyCity:              "Città",
		KeyZipCode:           "CAP",
		KeyCreditCard:        "Carta di credito",
		KeyPayPal:            "PayPal",
		KeyOrderSummary:      "Riepilogo ordine",
		KeyPlaceOrder:        "Effettua ordine",
		KeyProcessingOrder:   "Elaborazione ordine...",
		KeyOrderSuccess:      "Ordine effettuato con successo! Grazie per l'acquisto.",
		KeyOrderDeclined:     "Pagamento rifiutato. Prova un altro metodo di pagamento.",
		KeySettings:          "Impostazioni",
		KeyFile:              "File",
		KeyLanguage:          "Lingua",
		KeyDefaultPayment:    "Metodo di pagamento predefinito",
		KeyRememberFilters:   "Ricorda ricerca e filtri",
		KeySettingsSaved:     "Impostazioni salvate",
	}

	l.texts["fr"] = map[string]string{
		KeyAppTitle:          "Maison Boutique",
		KeySearchPlaceholder: "Rechercher des produits...",
		KeyCart:              "Panier",
		KeyCartEmpty:         "Votre panier est vide",
		KeyCartEmptyConfirm:  "Retirer tous les articles du panier ?",
		KeyClearAll:          "Tout vider",
		KeyAddToCart:         "Ajouter au panier",
		KeyDetails:           "Détails",
		KeyRemove:            "Retirer",
		KeyFeatures:          "Caractéristiques",
		KeySubtotal:          "Sous-total",
		KeyShipping:          "Livraison",
		KeyTax:               "Taxes",
		KeyTotal:             "Total",
		KeyFreeShipping:      "Livraison gratuite débloquée !",
		KeyProceedCheckout:   "Passer au paiement",
		KeyContinueShopping:  "Continuer vos achats",
		KeyCheckoutTitle:     "Paiement",
		KeyContactInfo:       "Coordonnées",
		KeyShippingAddress:   "Adresse de livraison",
		KeyPaymentMethod:     "Moyen de paiement",
		KeyEmail:             "Adresse e-mail",
		KeyFirstName:         "Prénom",
		KeyLastName:          "Nom",
		KeyAddress:           "Adresse",
		KeyCity:              "Ville",
		KeyZipCode:           "Code postal",
		KeyCreditCard:        "Carte de crédit",
		KeyPayPal:            "PayPal",
		KeyOrderSummary:      "Récapitulatif de commande",
		KeyPlaceOrder:        "Passer la commande",
		KeyProcessingOrder:   "Traitement de la commande...",
		KeyOrderSuccess:      "Commande passée avec succès ! Merci pour votre achat.",
		KeyOrderDeclined:     "Paiement refusé. Veuillez essayer un autre moyen de paiement.",
		KeySettings:          "Paramètres",
		KeyFile:              "Fichier",
		KeyLanguage:          "Langue",
		KeyDefaultPayment:    "Moyen de paiement par défaut",
		KeyRememberFilters:   "Mémoriser la recherche et les filtres",
		KeySettingsSaved:     "Paramètres enregistrés",
	}
}
