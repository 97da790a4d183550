package domain

import "github.com/shopspring/decimal"

// Quote is a realtime snapshot for one symbol. Money fields stay decimal
// until they cross the wire.
type Quote struct {
	Symbol           string          `json:"symbol"`
	ShortName        string          `json:"shortName"`
	Currency         string          `json:"currency"`
	Price            decimal.Decimal `json:"price"`
	PreviousClose    decimal.Decimal `json:"previousClose"`
	Open             decimal.Decimal `json:"open"`
	DayHigh          decimal.Decimal `json:"dayHigh"`
	DayLow           decimal.Decimal `json:"dayLow"`
	FiftyTwoWeekHigh decimal.Decimal `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  decimal.Decimal `json:"fiftyTwoWeekLow"`
	Volume           int64           `json:"volume"`
	MarketCap        int64           `json:"marketCap"`
}

// Change is the absolute move since the previous close.
func (q Quote) Change() decimal.Decimal {
	return q.Price.Sub(q.PreviousClose)
}

// ChangePct is the percentage move since the previous close. Zero when the
// previous close is zero.
func (q Quote) ChangePct() decimal.Decimal {
	if q.PreviousClose.IsZero() {
		return decimal.Zero
	}
	return q.Change().Div(q.PreviousClose).Mul(decimal.NewFromInt(100))
}

// CompanyProfile is the company-overview payload.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	CEO         string  `json:"ceo"`
	Employees   int64   `json:"employees"`
	MarketCap   float64 `json:"marketCap"`
	Country     string  `json:"country"`
}

// FallbackProfile substitutes for a failed company-overview fetch so the
// page can still render.
func FallbackProfile(symbol string) CompanyProfile {
	return CompanyProfile{
		Symbol:      symbol,
		CompanyName: symbol,
		Sector:      "Unknown",
		Industry:    "Unknown",
		Description: "Company information for " + symbol,
	}
}

// SearchResult is one ticker lookup candidate.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
