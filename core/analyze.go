package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Analyze executes the sales report pipeline: validation → indexing →
// aggregation → ranking → bonus/top-products → formatting.
//
// Parameters:
//   - data: The three input collections (catalog, roster, transactions)
//   - opts: Caller-supplied revenue and bonus strategies
//
// Returns:
//   - One SellerResult per input seller, ordered by profit descending
//
// Processing flow:
//  1. Validate input collections and options
//  2. Build seller accumulators and the product index
//  3. Aggregate purchase records into the accumulators
//  4. Rank accumulators by profit (stable, descending)
//  5. Assign bonuses and derive top-10 product lists
//  6. Round monetary fields and shape the output records
//
// Purchase records or line items referencing an unknown seller_id or
// sku are skipped silently. Any other failure aborts the whole run;
// no partial results are ever returned.
func Analyze(data *Dataset, opts *Options) ([]SellerResult, error) {
	if err := validateDataset(data); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	stats, statsByID := buildSellerStats(data.Sellers)
	productIndex := buildProductIndex(data.Products)

	if err := aggregate(data.PurchaseRecords, statsByID, productIndex, opts.CalculateRevenue); err != nil {
		return nil, err
	}

	RankSellerStats(stats)

	results := make([]SellerResult, len(stats))
	for rank, s := range stats {
		bonus, err := opts.CalculateBonus(rank, len(stats), s)
		if err != nil {
			return nil, &StrategyError{Strategy: "calculateBonus", Err: err}
		}

		results[rank] = SellerResult{
			SellerID:    s.ID,
			Name:        s.Name,
			Revenue:     round2(s.Revenue),
			Profit:      round2(s.Profit),
			SalesCount:  s.SalesCount,
			TopProducts: TopProducts(s.ProductsSold, topProductsLimit),
			Bonus:       round2(bonus),
		}
	}

	return results, nil
}

func validateDataset(data *Dataset) error {
	if data == nil {
		return &InvalidInputError{Reason: "data is nil"}
	}
	if len(data.Products) == 0 {
		return &InvalidInputError{Reason: "products collection is empty"}
	}
	if len(data.Sellers) == 0 {
		return &InvalidInputError{Reason: "sellers collection is empty"}
	}
	if len(data.PurchaseRecords) == 0 {
		return &InvalidInputError{Reason: "purchase_records collection is empty"}
	}
	return nil
}

func validateOptions(opts *Options) error {
	if opts == nil {
		return &InvalidOptionsError{Reason: "options is nil"}
	}
	if opts.CalculateRevenue == nil {
		return &InvalidOptionsError{Reason: "calculateRevenue strategy is missing"}
	}
	if opts.CalculateBonus == nil {
		return &InvalidOptionsError{Reason: "calculateBonus strategy is missing"}
	}
	return nil
}

// buildSellerStats creates one zeroed accumulator per roster entry,
// preserving roster order, plus an id index over the same values.
// Duplicate ids: last write wins (inherited quirk, not corrected).
func buildSellerStats(sellers []Seller) ([]*SellerStats, map[string]*SellerStats) {
	stats := make([]*SellerStats, 0, len(sellers))
	byID := make(map[string]*SellerStats, len(sellers))

	for _, seller := range sellers {
		s := &SellerStats{
			ID:           seller.ID,
			Name:         displayName(seller),
			ProductsSold: make(map[string]float64),
		}
		stats = append(stats, s)
		byID[seller.ID] = s
	}

	return stats, byID
}

// buildProductIndex maps sku -> product. Duplicate skus: last write wins.
func buildProductIndex(products []Product) map[string]Product {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		index[p.SKU] = p
	}
	return index
}

func displayName(seller Seller) string {
	name := strings.TrimSpace(seller.FirstName + " " + seller.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

// aggregate folds purchase records into the seller accumulators, in
// input order. Seller revenue is net of discount: total_amount minus
// total_discount. A record with an unknown seller_id is skipped
// entirely; a line item with an unknown sku is skipped after the
// record-level counters were already applied.
func aggregate(records []PurchaseRecord, statsByID map[string]*SellerStats, productIndex map[string]Product, calculateRevenue RevenueFunc) error {
	for _, record := range records {
		seller, ok := statsByID[record.SellerID]
		if !ok {
			continue
		}

		seller.SalesCount++
		seller.Revenue += record.TotalAmount - record.TotalDiscount

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				continue
			}

			revenue, err := calculateRevenue(item, product)
			if err != nil {
				return &StrategyError{Strategy: "calculateRevenue", Err: err}
			}

			cost := lineCost(product, item)
			seller.Profit += revenue - cost

			seller.ProductsSold[item.SKU] += item.Quantity
		}
	}

	return nil
}

// lineCost computes purchase_price * quantity using decimal
// arithmetic to avoid floating-point drift in the profit sum.
func lineCost(product Product, item LineItem) float64 {
	priceDecimal := decimal.NewFromFloat(product.PurchasePrice)
	quantityDecimal := decimal.NewFromFloat(item.Quantity)

	cost, _ := priceDecimal.Mul(quantityDecimal).Float64()
	return cost
}
