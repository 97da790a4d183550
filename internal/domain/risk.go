package domain

// RiskProfile pairs stop-loss and take-profit percentage thresholds.
type RiskProfile struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	StopLoss    float64 `json:"stopLoss"`
	TakeProfit  float64 `json:"takeProfit"`
	Description string  `json:"description"`
}

const CustomRiskProfileID = "custom"

// Fallbacks when a profile lookup misses.
const (
	DefaultStopLossPct   = 5
	DefaultTakeProfitPct = 10
)

var RiskProfiles = []RiskProfile{
	{
		ID:          "conservative",
		Label:       "Conservative",
		StopLoss:    3,
		TakeProfit:  6,
		Description: "Lower risk, smaller moves",
	},
	{
		ID:          "moderate",
		Label:       "Moderate",
		StopLoss:    5,
		TakeProfit:  10,
		Description: "Balanced approach",
	},
	{
		ID:          "aggressive",
		Label:       "Aggressive",
		StopLoss:    8,
		TakeProfit:  15,
		Description: "Higher risk, bigger rewards",
	},
	{
		ID:          CustomRiskProfileID,
		Label:       "Custom",
		StopLoss:    0,
		TakeProfit:  0,
		Description: "Set your own levels",
	},
}

func FindRiskProfile(id string) (RiskProfile, bool) {
	for _, r := range RiskProfiles {
		if r.ID == id {
			return r, true
		}
	}
	return RiskProfile{}, false
}
