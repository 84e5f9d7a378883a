package core

import (
	"github.com/shopspring/decimal"
)

// CalculateSimpleRevenue is the reference revenue strategy:
// sale_price * quantity * (1 - discount/100), with a missing discount
// treated as 0. Uses decimal arithmetic for precise calculation.
func CalculateSimpleRevenue(item LineItem, _ Product) (float64, error) {
	salePrice := decimal.NewFromFloat(item.SalePrice)
	quantity := decimal.NewFromFloat(item.Quantity)

	// discount is a percentage: 10 means 10% off
	discountFactor := decimal.NewFromInt(1).Sub(
		decimal.NewFromFloat(item.Discount).Div(decimal.NewFromInt(100)))

	revenue, _ := salePrice.Mul(quantity).Mul(discountFactor).Float64()
	return revenue, nil
}

// CalculateBonusByProfit is the reference bonus strategy, tiered by
// rank in the profit-descending ordering:
//   - rank 0: 15% of profit
//   - ranks 1-2: 10% of profit
//   - last rank: 0
//   - all others: 5% of profit
//
// A single-seller roster matches both the rank-0 and last-rank tiers;
// the last-rank tier wins and the bonus is 0.
func CalculateBonusByProfit(rank, total int, stats *SellerStats) (float64, error) {
	profit := decimal.NewFromFloat(stats.Profit)

	var pct decimal.Decimal
	switch {
	case total == 1:
		return 0, nil
	case rank == 0:
		pct = decimal.NewFromFloat(0.15)
	case rank == 1 || rank == 2:
		pct = decimal.NewFromFloat(0.10)
	case rank == total-1:
		return 0, nil
	default:
		pct = decimal.NewFromFloat(0.05)
	}

	bonus, _ := profit.Mul(pct).Float64()
	return bonus, nil
}

// DefaultOptions returns Options wired with the reference strategies.
func DefaultOptions() *Options {
	return &Options{
		CalculateRevenue: CalculateSimpleRevenue,
		CalculateBonus:   CalculateBonusByProfit,
	}
}
