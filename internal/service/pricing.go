package service

import "printbot/internal/domain"

// Quote prices a single document of the given page count against the table.
// The tier is a cliff, not a marginal rate: once pages reaches the threshold
// the lower rate reprices every page, so a 49-page document can cost more
// than a 50-page one. That asymmetry is intentional and load-bearing for
// compatibility with the existing price list.
func Quote(table domain.PriceTable, pages int) (base, withCover int) {
	if pages < domain.TierThreshold {
		base = pages * table.RateBelow50
	} else {
		base = pages * table.RateAtOrAbove50
	}
	return base, base + table.CoverCost
}
