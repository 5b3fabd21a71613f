package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/maisonlux/boutique/internal/model"
)

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "All"

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// document is the on-disk shape of the catalog file.
type document struct {
	Products []model.Product `yaml:"products"`
}

// Service provides ordered, read-only access to the product list.
type Service struct {
	products []model.Product
	byID     map[string]model.Product
	logger   *zap.Logger
}

// NewService loads the embedded default catalog.
func NewService(logger *zap.Logger) (*Service, error) {
	return NewServiceFromYAML(defaultCatalogYAML, logger)
}

// NewServiceFromYAML parses a catalog document and validates it. Product ids
// must be unique; an empty catalog is rejected.
func NewServiceFromYAML(data []byte, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog contains no products")
	}

	s := &Service{
		products: doc.Products,
		byID:     make(map[string]model.Product, len(doc.Products)),
		logger:   logger,
	}

	for _, p := range doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has no id", p.Name)
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id: %s", p.ID)
		}
		s.byID[p.ID] = p
	}

	logger.Info("catalog loaded", zap.Int("products", len(s.products)))
	return s, nil
}

// Products returns the full product list in catalog order.
func (s *Service) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Service) Get(id string) (model.Product, bool) {
	p, exists := s.byID[id]
	return p, exists
}

// Categories returns CategoryAll followed by the distinct product categories
// in first-seen catalog order.
func (s *Service) Categories() []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Filter returns the products matching both the free-text search term and the
// category. The term matches case-insensitively against name or description;
// an empty term matches everything, as does CategoryAll.
func (s *Service) Filter(term, category string) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(term))

	var matched []model.Product
	for _, p := range s.products {
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
