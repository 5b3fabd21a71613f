package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/catalog"
	"github.com/maisonlux/boutique/internal/checkout"
	"github.com/maisonlux/boutique/internal/storage"
	"github.com/maisonlux/boutique/internal/ui"
)

func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer logger.Sync()

	myApp := app.NewWithID("com.maisonlux.boutique")
	myWindow := myApp.NewWindow("Maison Boutique")
	myWindow.Resize(fyne.NewSize(1000, 680))

	catalogSvc, err := catalog.NewService(logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	cartSvc := cart.NewService(logger)
	checkoutSvc := checkout.NewService(cartSvc, logger)
	storage.NewCartStore(myApp, logger).Bind(cartSvc)

	ui.NewRootUI(myWindow, myApp, catalogSvc, cartSvc, checkoutSvc)

	myWindow.ShowAndRun()
}
