package model

// Rating is the qualitative analyst rating attached to a catalog record.
type Rating string

// Valid ratings, from strongest conviction to weakest.
const (
	RatingStrongBuy Rating = "strong-buy"
	RatingBuy       Rating = "buy"
	RatingHold      Rating = "hold"
	RatingNeutral   Rating = "neutral"
	RatingSell      Rating = "sell"
)

// SecurityRecord is a single entry in the compiled-in stock catalog.
// Records are immutable after load and owned exclusively by the catalog.
// Symbols are not unique: the source data contains exact duplicates and one
// symbol reused for two different companies, and both must be kept as-is.
type SecurityRecord struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	Region        string  `json:"region"`
	Sector        string  `json:"sector"`
	DividendYield float64 `json:"dividendYield"` // percent, >= 0
	PayoutRatio   float64 `json:"payoutRatio"`   // percent
	MarketCap     float64 `json:"marketCap"`     // billions
	PERatio       float64 `json:"peRatio"`       // 0 = not meaningful/unavailable
	Price         float64 `json:"price"`         // currency units, > 0
	Beta          float64 `json:"beta"`
	Rating        Rating  `json:"rating"`
	Confidence    int     `json:"confidence"` // 0-100
}
