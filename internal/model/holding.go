package model

// Holding is one portfolio position, derived from exactly one catalog record
// at build time. Descriptive fields are copied from the source record so the
// holding never references catalog memory. AvgCost and DividendYield are fixed
// for the holding's lifetime; CurrentPrice is mutated only by simulation ticks
// and is always > 0.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	Region        string  `json:"region"`
	Sector        string  `json:"sector"`
	Shares        int     `json:"shares"`
	AvgCost       float64 `json:"avgCost"`
	CurrentPrice  float64 `json:"currentPrice"`
	DividendYield float64 `json:"dividendYield"`
	Beta          float64 `json:"beta"`
}

// MarketValue returns the holding's current market value (shares * price).
func (h Holding) MarketValue() float64 {
	return float64(h.Shares) * h.CurrentPrice
}

// GainLoss returns the unrealized gain or loss against cost basis.
func (h Holding) GainLoss() float64 {
	return (h.CurrentPrice - h.AvgCost) * float64(h.Shares)
}

// GainLossPercent returns the unrealized gain or loss as a percentage of the
// average cost. Returns 0 when the average cost is zero.
func (h Holding) GainLossPercent() float64 {
	if h.AvgCost == 0 {
		return 0
	}
	return (h.CurrentPrice - h.AvgCost) / h.AvgCost * 100
}
