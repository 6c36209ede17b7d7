package model

// TimeSeriesPoint is one day of the synthetic performance series.
type TimeSeriesPoint struct {
	Date           string  `json:"date"` // YYYY-MM-DD, strictly increasing across a series
	PortfolioValue float64 `json:"value"`
	BenchmarkValue float64 `json:"benchmark"`
	DividendFlow   float64 `json:"dividends"`
}

// Range selects a trailing window of the generated time series.
type Range string

// Supported display ranges.
const (
	RangeDay   Range = "1D"
	RangeWeek  Range = "1W"
	RangeMonth Range = "1M"
	RangeAll   Range = "ALL"
)

// Points returns the number of trailing points the range selects.
// 0 means the whole series.
func (r Range) Points() int {
	switch r {
	case RangeDay:
		return 1
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 0
	}
}

// Valid reports whether r is one of the supported ranges.
func (r Range) Valid() bool {
	switch r {
	case RangeDay, RangeWeek, RangeMonth, RangeAll:
		return true
	}
	return false
}
