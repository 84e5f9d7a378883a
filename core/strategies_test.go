package core

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestCalculateSimpleRevenue(t *testing.T) {
	tests := []struct {
		name     string
		item     LineItem
		expected float64
	}{
		{
			name:     "No discount",
			item:     LineItem{SKU: "A", Quantity: 2, SalePrice: 15},
			expected: 30.0, // 15 * 2
		},
		{
			name:     "Percentage discount",
			item:     LineItem{SKU: "A", Quantity: 4, SalePrice: 10, Discount: 25},
			expected: 30.0, // 10 * 4 * 0.75
		},
		{
			name:     "Full discount",
			item:     LineItem{SKU: "A", Quantity: 3, SalePrice: 9.99, Discount: 100},
			expected: 0.0,
		},
		{
			name:     "Fractional price",
			item:     LineItem{SKU: "A", Quantity: 3, SalePrice: 0.1},
			expected: 0.3, // exact under decimal arithmetic
		},
		{
			name:     "Zero quantity",
			item:     LineItem{SKU: "A", Quantity: 0, SalePrice: 15},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revenue, err := CalculateSimpleRevenue(tt.item, Product{SKU: "A", PurchasePrice: 10})
			assert.NoError(t, err)
			check.Equal(t, tt.expected, revenue)
		})
	}
}

func TestCalculateBonusByProfit_Tiers(t *testing.T) {
	// total 5 exercises every tier
	stats := &SellerStats{Profit: 200}

	tests := []struct {
		name     string
		rank     int
		total    int
		expected float64
	}{
		{name: "Rank 0 gets 15 percent", rank: 0, total: 5, expected: 30.0},
		{name: "Rank 1 gets 10 percent", rank: 1, total: 5, expected: 20.0},
		{name: "Rank 2 gets 10 percent", rank: 2, total: 5, expected: 20.0},
		{name: "Middle rank gets 5 percent", rank: 3, total: 5, expected: 10.0},
		{name: "Last rank gets nothing", rank: 4, total: 5, expected: 0.0},
		{name: "Last of three still in 10 percent tier", rank: 2, total: 3, expected: 20.0},
		{name: "Last of two still in 10 percent tier", rank: 1, total: 2, expected: 20.0},
		{name: "Single seller roster gets nothing", rank: 0, total: 1, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bonus, err := CalculateBonusByProfit(tt.rank, tt.total, stats)
			assert.NoError(t, err)
			check.Equal(t, tt.expected, bonus)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	check.NotNil(t, opts.CalculateRevenue)
	check.NotNil(t, opts.CalculateBonus)
}
