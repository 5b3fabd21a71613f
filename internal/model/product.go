package model

// Product represents a single catalog entry. Products are defined statically
// in the embedded catalog document and are never mutated at runtime.
type Product struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Price       float64  `yaml:"price" json:"price"`
	SKU         string   `yaml:"sku" json:"sku"`
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Image       string   `yaml:"image" json:"image"`
	Features    []string `yaml:"features" json:"features"`
}
