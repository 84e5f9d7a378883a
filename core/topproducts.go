package core

import "sort"

// topProductsLimit caps each seller's top-products list.
const topProductsLimit = 10

// TopProducts converts a seller's products_sold map into a ranked
// list: quantity descending, ties broken by sku ascending (bytewise),
// truncated to limit entries.
func TopProducts(productsSold map[string]float64, limit int) []ProductSale {
	entries := make([]ProductSale, 0, len(productsSold))
	for sku, quantity := range productsSold {
		entries = append(entries, ProductSale{SKU: sku, Quantity: quantity})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		return entries[i].SKU < entries[j].SKU
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
