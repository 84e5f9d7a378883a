package core

import "sort"

// RankSellerStats orders seller accumulators by profit descending,
// in place. The sort is stable: sellers with equal profit keep their
// roster order. No seller is dropped; zero-sale sellers still rank.
func RankSellerStats(stats []*SellerStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})
}
