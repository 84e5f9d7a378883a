package core

// Product represents one catalog entry. Read-only during aggregation.
type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}

// Seller represents one roster entry. Both name parts are optional.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// LineItem is one product line within a purchase record.
type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount,omitempty"` // percent, 0 when absent
}

// PurchaseRecord is one transaction attributed to a seller.
// Items may be nil; record-level totals still apply without them.
type PurchaseRecord struct {
	SellerID      string     `json:"seller_id"`
	TotalAmount   float64    `json:"total_amount"`
	TotalDiscount float64    `json:"total_discount"`
	Items         []LineItem `json:"items,omitempty"`
}

// Dataset bundles the three input collections for one analysis run.
type Dataset struct {
	Products        []Product        `json:"products"`
	Sellers         []Seller         `json:"sellers"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

// SellerStats is the per-seller accumulator built during aggregation.
// It is owned by a single Analyze invocation and never returned to
// callers; bonus strategies receive it as a read-only view.
type SellerStats struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]float64 // sku -> cumulative quantity
}

// ProductSale is one entry of a seller's top-products list.
type ProductSale struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// SellerResult is the final per-seller report record. Monetary fields
// are rounded to 2 decimal places; TopProducts holds at most 10
// entries sorted by quantity descending, sku ascending.
type SellerResult struct {
	SellerID    string        `json:"seller_id"`
	Name        string        `json:"name"`
	Revenue     float64       `json:"revenue"`
	Profit      float64       `json:"profit"`
	SalesCount  int           `json:"sales_count"`
	TopProducts []ProductSale `json:"top_products"`
	Bonus       float64       `json:"bonus"`
}

// RevenueFunc computes the revenue attributed to one line item.
type RevenueFunc func(item LineItem, product Product) (float64, error)

// BonusFunc computes a seller's bonus from its 0-based rank in the
// profit-descending ordering and the total number of sellers.
type BonusFunc func(rank, total int, stats *SellerStats) (float64, error)

// Options carries the caller-supplied strategy functions. Both slots
// are required.
type Options struct {
	CalculateRevenue RevenueFunc
	CalculateBonus   BonusFunc
}
