package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/catalog"
	"github.com/maisonlux/boutique/internal/checkout"
	"github.com/maisonlux/boutique/internal/storage"
	"github.com/maisonlux/boutique/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.maisonlux.boutique"
	AppName = "Maison Boutique"

	WindowWidth  = 1000
	WindowHeight = 680
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBoutiqueTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	catalogSvc, err := catalog.NewService(logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	cartSvc := cart.NewService(logger)
	checkoutSvc := checkout.NewService(cartSvc, logger)

	// Restore the persisted cart and keep future changes saved.
	storage.NewCartStore(myApp, logger).Bind(cartSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc, cartSvc, checkoutSvc)

	// Show and run
	myWindow.ShowAndRun()
}
