package model

// Portfolio is an ordered set of holdings plus a cached metrics snapshot.
// Holding order is the catalog selection order and is stable for the
// portfolio's lifetime. The cached Metrics must always be a pure function of
// the current holdings; a portfolio whose metrics lag its holdings must never
// be visible to a reader.
type Portfolio struct {
	ID       string    `json:"id"`
	Holdings []Holding `json:"holdings"`
	Metrics  Metrics   `json:"metrics"`
}

// Metrics holds the aggregates derived from a set of holdings. All values are
// recomputable from the holdings except the risk figures (SharpeRatio, Beta,
// MaxDrawdown, ValueAtRisk95), which are configuration inputs rather than
// computed outputs.
type Metrics struct {
	TotalValue          float64 `json:"totalValue"`          // sum of shares * current price
	DailyChange         float64 `json:"dailyChange"`         // synthetic per-holding delta, see MetricsService
	TotalDividendIncome float64 `json:"totalDividendIncome"` // annual income valued at current price
	TotalReturn         float64 `json:"totalReturn"`         // percent vs cost basis, 0 when cost is 0
	DividendYield       float64 `json:"annualDividendYield"` // value-weighted average yield, percent
	SharpeRatio         float64 `json:"sharpeRatio"`
	Beta                float64 `json:"beta"`
	MaxDrawdown         float64 `json:"maxDrawdown"`
	ValueAtRisk95       float64 `json:"var95"`
}
