package domain

// PriceTable holds the per-page rates and the cover binding cost, in dinars.
// The tier is a hard cliff: at or above TierThreshold pages the lower rate
// applies to every page, not just the pages above the threshold.
type PriceTable struct {
	RateBelow50     int
	RateAtOrAbove50 int
	CoverCost       int
}

// TierThreshold is the page count at which the lower per-page rate kicks in
const TierThreshold = 50

// DefaultPriceTable returns the stock rates
func DefaultPriceTable() PriceTable {
	return PriceTable{
		RateBelow50:     50,
		RateAtOrAbove50: 40,
		CoverCost:       500,
	}
}

// Stats are process-lifetime counters, reset on restart
type Stats struct {
	ConfirmedOrders     int
	RejectedOrders      int
	TotalConfirmedFiles int
	InteractedUsers     int
}
