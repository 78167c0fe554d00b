package model

// GrowthProjectionEntry is a year-end snapshot of a deterministic projection.
type GrowthProjectionEntry struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"` // cumulative, initial balance included
	Growth        float64 `json:"growth"`        // may be negative
}

// Band is a 10th/50th/90th percentile spread of simulated balances.
type Band struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// MonteCarloYearEntry holds the bands of every risk profile for one year.
type MonteCarloYearEntry struct {
	Year         int  `json:"year"`
	Conservative Band `json:"conservative"`
	Moderate     Band `json:"moderate"`
	Aggressive   Band `json:"aggressive"`
}
