package catalog

import (
	"github.com/maisonlux/boutique/internal/model"
)

// Catalog defines the read-only interface for the product catalog.
type Catalog interface {
	Products() []model.Product
	Get(id string) (model.Product, bool)
	Categories() []string
	Filter(term, category string) []model.Product
}
