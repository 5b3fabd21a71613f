package model

import (
	"math"
	"testing"
)

const totalsEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < totalsEpsilon
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []CartItem
		expected Totals
	}{
		{
			name:     "empty cart",
			items:    nil,
			expected: Totals{Subtotal: 0, Shipping: 0, Tax: 0, Total: 0},
		},
		{
			name: "subtotal 500 pays flat shipping",
			items: []CartItem{
				{Product: Product{ID: "p1", Price: 250}, Quantity: 2},
			},
			expected: Totals{Subtotal: 500, Shipping: 25, Tax: 40, Total: 565},
		},
		{
			name: "subtotal 1200 ships free",
			items: []CartItem{
				{Product: Product{ID: "p1", Price: 600}, Quantity: 2},
			},
			expected: Totals{Subtotal: 1200, Shipping: 0, Tax: 96, Total: 1296},
		},
		{
			name: "subtotal exactly at threshold still pays shipping",
			items: []CartItem{
				{Product: Product{ID: "p1", Price: 1000}, Quantity: 1},
			},
			expected: Totals{Subtotal: 1000, Shipping: 25, Tax: 80, Total: 1105},
		},
		{
			name: "multiple line items accumulate",
			items: []CartItem{
				{Product: Product{ID: "p1", Price: 100}, Quantity: 1},
				{Product: Product{ID: "p2", Price: 50}, Quantity: 3},
			},
			expected: Totals{Subtotal: 250, Shipping: 25, Tax: 20, Total: 295},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := CalculateTotals(test.items)
			if !almostEqual(got.Subtotal, test.expected.Subtotal) {
				t.Errorf("Subtotal = %.2f, expected %.2f", got.Subtotal, test.expected.Subtotal)
			}
			if !almostEqual(got.Shipping, test.expected.Shipping) {
				t.Errorf("Shipping = %.2f, expected %.2f", got.Shipping, test.expected.Shipping)
			}
			if !almostEqual(got.Tax, test.expected.Tax) {
				t.Errorf("Tax = %.2f, expected %.2f", got.Tax, test.expected.Tax)
			}
			if !almostEqual(got.Total, test.expected.Total) {
				t.Errorf("Total = %.2f, expected %.2f", got.Total, test.expected.Total)
			}
		})
	}
}

func TestTotals_FreeShipping(t *testing.T) {
	tests := []struct {
		subtotal float64
		expected bool
	}{
		{0, false},
		{999.99, false},
		{1000, false},
		{1000.01, true},
		{1200, true},
	}

	for _, test := range tests {
		totals := Totals{Subtotal: test.subtotal}
		if totals.FreeShipping() != test.expected {
			t.Errorf("FreeShipping() with subtotal=%.2f = %v, expected %v",
				test.subtotal, totals.FreeShipping(), test.expected)
		}
	}
}
