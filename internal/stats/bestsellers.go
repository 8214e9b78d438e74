package stats

import "sort"

// SellerRank is one row of a best-sellers ranking.
type SellerRank struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// TopSellingItems ranks a quantity tally in descending order and keeps the
// first n entries. Ties are broken by name so the ranking is stable across
// runs. n <= 0 returns the whole ranking.
func TopSellingItems(tally map[string]int, n int) []SellerRank {
	ranked := make([]SellerRank, 0, len(tally))
	for name, quantity := range tally {
		ranked = append(ranked, SellerRank{Name: name, Quantity: quantity})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MergeTallies sums per-key quantities across several tallies.
func MergeTallies(tallies ...map[string]int) map[string]int {
	merged := map[string]int{}
	for _, tally := range tallies {
		for name, quantity := range tally {
			merged[name] += quantity
		}
	}
	return merged
}
