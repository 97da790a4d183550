package domain

// TimeFrame is a selectable backtest window.
type TimeFrame struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

var TimeFrames = []TimeFrame{
	{Label: "1 Year", Value: "1y", Description: "Short-term analysis"},
	{Label: "2 Years", Value: "2y", Description: "Recent market cycles"},
	{Label: "5 Years", Value: "5y", Description: "Medium-term trends"},
	{Label: "10 Years", Value: "10y", Description: "Long-term performance"},
	{Label: "Lifetime", Value: "max", Description: "All available data"},
}

type CapitalPreset struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var CapitalPresets = []CapitalPreset{
	{Label: "₹10K", Value: 10000},
	{Label: "₹50K", Value: 50000},
	{Label: "₹1L", Value: 100000},
	{Label: "₹5L", Value: 500000},
	{Label: "₹10L", Value: 1000000},
}

var EntrySuggestions = []string{
	"Buy when RSI < 30 and price is above 200-day SMA",
	"Buy when price crosses above 50-day SMA with increasing volume",
	"Buy on golden cross (50 SMA above 200 SMA) with RSI between 40-60",
	"Buy when MACD crosses above signal line and RSI is below 50",
}

var ExitSuggestions = []string{
	"Sell when RSI > 70 or trailing stop loss at 8%",
	"Sell when price drops 5% below 20-day SMA or take profit at 15%",
	"Sell on death cross or stop loss at 10% below entry",
	"Sell when MACD crosses below signal line with trailing stop at 7%",
}

// RiskThresholds are optional per-request stop-loss/take-profit bounds.
type RiskThresholds struct {
	StopLoss   float64 `json:"stopLoss"`
	TakeProfit float64 `json:"takeProfit"`
}

// BacktestRequest is the validated, normalized dashboard-side request.
// Created once per submission and handed to the engine proxy; never stored.
type BacktestRequest struct {
	EntryStrategy string          `json:"entryStrategy"`
	ExitStrategy  string          `json:"exitStrategy"`
	Stocks        []string        `json:"stocks"`
	Capital       float64         `json:"capital"`
	Period        string          `json:"period"`
	RiskProfile   *RiskThresholds `json:"riskProfile,omitempty"`
}

// EngineRequest is the backtest engine's wire schema. The entry and exit
// strategies collapse into a single natural-language query field.
type EngineRequest struct {
	Query   string   `json:"query"`
	Tickers []string `json:"tickers"`
	Period  string   `json:"period"`
	Capital float64  `json:"capital"`
}

func (r BacktestRequest) ToEngineRequest() EngineRequest {
	return EngineRequest{
		Query:   "Entry: " + r.EntryStrategy + ". Exit: " + r.ExitStrategy,
		Tickers: r.Stocks,
		Period:  r.Period,
		Capital: r.Capital,
	}
}
