package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(nil)
	require.NoError(t, err)
	return svc
}

func TestNewService_LoadsEmbeddedCatalog(t *testing.T) {
	svc := newTestCatalog(t)

	products := svc.Products()
	require.Len(t, products, 4)

	// Catalog order is preserved
	assert.Equal(t, "bag-001", products[0].ID)
	assert.Equal(t, "wallet-001", products[3].ID)

	p, ok := svc.Get("shoe-001")
	require.True(t, ok)
	assert.Equal(t, "Princetown Leather Slippers", p.Name)
	assert.Equal(t, 650.0, p.Price)
	assert.Len(t, p.Features, 4)

	_, ok = svc.Get("no-such-product")
	assert.False(t, ok)
}

func TestNewServiceFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "products: [}"},
		{"empty catalog", "products: []"},
		{"missing id", "products:\n  - name: Nameless\n    price: 10"},
		{"duplicate id", "products:\n  - id: a\n    name: A\n  - id: a\n    name: B"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewServiceFromYAML([]byte(test.data), nil)
			assert.Error(t, err)
		})
	}
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	svc := newTestCatalog(t)

	assert.Equal(t, []string{CategoryAll, "Bags", "Accessories", "Footwear"}, svc.Categories())
}

func TestFilter(t *testing.T) {
	svc := newTestCatalog(t)

	tests := []struct {
		name     string
		term     string
		category string
		expected []string
	}{
		{"no filters", "", CategoryAll, []string{"bag-001", "belt-001", "shoe-001", "wallet-001"}},
		{"category only", "", "Accessories", []string{"belt-001", "wallet-001"}},
		{"term matches name case-insensitively", "MARMONT", CategoryAll, []string{"bag-001", "wallet-001"}},
		{"term matches description", "horsebit", CategoryAll, []string{"shoe-001"}},
		{"term and category combined", "marmont", "Bags", []string{"bag-001"}},
		{"term and category excluding", "marmont", "Footwear", nil},
		{"no match", "chronograph", CategoryAll, nil},
		{"empty category matches all", "belt", "", []string{"belt-001"}},
		{"whitespace term matches all", "   ", "Footwear", []string{"shoe-001"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got []string
			for _, p := range svc.Filter(test.term, test.category) {
				got = append(got, p.ID)
			}
			assert.Equal(t, test.expected, got)
		})
	}
}
