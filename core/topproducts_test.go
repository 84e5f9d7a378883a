package core

import (
	"fmt"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestTopProducts_OrderAndTieBreak(t *testing.T) {
	sold := map[string]float64{
		"banana": 5,
		"apple":  5,
		"cherry": 9,
		"date":   1,
	}

	top := TopProducts(sold, topProductsLimit)

	check.Equal(t, []ProductSale{
		{SKU: "cherry", Quantity: 9},
		{SKU: "apple", Quantity: 5}, // ties break by sku ascending
		{SKU: "banana", Quantity: 5},
		{SKU: "date", Quantity: 1},
	}, top)
}

func TestTopProducts_TruncatesToLimit(t *testing.T) {
	sold := make(map[string]float64)
	for i := 0; i < 25; i++ {
		sold[fmt.Sprintf("sku-%02d", i)] = float64(i + 1)
	}

	top := TopProducts(sold, topProductsLimit)

	check.Equal(t, 10, len(top))
	check.Equal(t, "sku-24", top[0].SKU)
	check.Equal(t, 25.0, top[0].Quantity)
	check.Equal(t, "sku-15", top[9].SKU)
}

func TestTopProducts_Empty(t *testing.T) {
	top := TopProducts(map[string]float64{}, topProductsLimit)
	check.Equal(t, []ProductSale{}, top)
}

func TestTopProducts_BytewiseSKUOrder(t *testing.T) {
	// Bytewise comparison: uppercase sorts before lowercase
	sold := map[string]float64{"a1": 2, "B1": 2}

	top := TopProducts(sold, topProductsLimit)

	check.Equal(t, "B1", top[0].SKU)
	check.Equal(t, "a1", top[1].SKU)
}
