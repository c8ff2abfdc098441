package pricing

// BreakdownLine is one charged category of an estimate. Categories with zero
// minutes are omitted from the breakdown entirely.
type BreakdownLine struct {
	Label   string  `json:"label"`
	Minutes int     `json:"minutes"`
	Amount  float64 `json:"amount"`
}

type Estimate struct {
	Total     float64         `json:"total"`
	Breakdown []BreakdownLine `json:"breakdown"`
}

type EstimateRequest struct {
	BaseHourlyRate float64 `json:"base_hourly_rate" binding:"required,gt=0"`
	StartLocal     string  `json:"start_local"`
	EndLocal       string  `json:"end_local"`
}
